// Package cmd - normalize command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flightfare/core/fareselect"
	"flightfare/core/lookup"
	"flightfare/core/normalize"
	"flightfare/core/pricing"
	"flightfare/core/types"
	"flightfare/internal/config"
	"flightfare/internal/logging"
)

var (
	legsFile      string
	finalizedFile string
	origin        string
	destination   string
	adults        int64
	children      int64
	infants       int64
	fareIndex     int
	roundTrip     bool
	armouryOW     string
	armouryRT     string
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize [segment.json]",
	Short: "Normalize a raw provider segment into a canonical fare",
	Long: `Read one raw provider segment from a JSON file and print the
canonical fare record.

The leg dictionary may live inline or in a separate file passed with --legs.
On the fail-soft path (no finalized-fare policy source) the partial record
is printed with a notice instead of the serialized form.

Examples:
  flightfare normalize segment.json
  flightfare normalize --adults 2 --infants 1 segment.json
  flightfare normalize --fare-index 2 --roundtrip segment.json`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVar(&legsFile, "legs", "", "leg dictionary JSON file")
	normalizeCmd.Flags().StringVar(&finalizedFile, "finalized", "", "previously finalized fare JSON file")
	normalizeCmd.Flags().StringVar(&origin, "origin", "", "origin display string")
	normalizeCmd.Flags().StringVar(&destination, "destination", "", "destination display string")
	normalizeCmd.Flags().Int64Var(&adults, "adults", 1, "adult passenger count")
	normalizeCmd.Flags().Int64Var(&children, "children", 0, "child passenger count")
	normalizeCmd.Flags().Int64Var(&infants, "infants", 0, "infant passenger count")
	normalizeCmd.Flags().IntVar(&fareIndex, "fare-index", 0, "selected fare option index")
	normalizeCmd.Flags().BoolVar(&roundTrip, "roundtrip", false, "treat the segment as round-trip combined")
	normalizeCmd.Flags().StringVar(&armouryOW, "armoury", "", "one-way fare armoury accumulator")
	normalizeCmd.Flags().StringVar(&armouryRT, "roundtrip-armoury", "", "round-trip fare armoury accumulator")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading segment file: %w", err)
	}

	seg, err := normalize.DecodeSegment(data)
	if err != nil {
		return err
	}

	tables, err := loadTables()
	if err != nil {
		return err
	}

	if legsFile != "" {
		legData, err := os.ReadFile(legsFile)
		if err != nil {
			return fmt.Errorf("reading leg dictionary: %w", err)
		}
		legDict, err := lookup.LoadLegs(legData)
		if err != nil {
			return err
		}
		tables.Legs = legDict
	}

	var previous *types.FinalizedFare
	if finalizedFile != "" {
		prevData, err := os.ReadFile(finalizedFile)
		if err != nil {
			return fmt.Errorf("reading finalized fare: %w", err)
		}
		previous = &types.FinalizedFare{}
		if err := json.Unmarshal(prevData, previous); err != nil {
			return fmt.Errorf("decoding finalized fare: %w", err)
		}
	}

	result := normalize.Normalize(normalize.Input{
		Segment:     seg,
		Origin:      origin,
		Destination: destination,
		Previous:    previous,
		Armoury:     fareselect.Armoury{OneWay: armouryOW, RoundTrip: armouryRT},
		Counts:      pricing.PaxCounts{Adults: adults, Children: children, Infants: infants},
		RoundTrip:   roundTrip,
		FareIndex:   fareIndex,
	}, tables)

	if !result.Complete {
		logging.Warn("normalization returned a partial record")
		partial, err := normalize.Serialize(result.Fare, config.Get().Output.Pretty)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "partial record (fail-soft path):")
		fmt.Println(partial)
		return nil
	}

	if config.Get().Output.Pretty {
		pretty, err := normalize.Serialize(result.Fare, true)
		if err != nil {
			return err
		}
		fmt.Println(pretty)
		return nil
	}
	fmt.Println(result.Serialized)
	return nil
}

func loadTables() (*lookup.Tables, error) {
	cfg := config.Get()

	airlines, err := lookup.LoadNames(cfg.Lookup.AirlinesPath)
	if err != nil {
		return nil, err
	}
	airports, err := lookup.LoadNames(cfg.Lookup.AirportsPath)
	if err != nil {
		return nil, err
	}
	countries, err := lookup.LoadNames(cfg.Lookup.CountriesPath)
	if err != nil {
		return nil, err
	}

	return &lookup.Tables{
		Airlines:  airlines,
		Airports:  airports,
		Countries: countries,
	}, nil
}
