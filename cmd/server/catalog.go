package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cx-tal-miterani/flight-search-system/internal/cache"
	"github.com/cx-tal-miterani/flight-search-system/internal/handlers"
	"github.com/cx-tal-miterani/flight-search-system/internal/models"
	"github.com/cx-tal-miterani/flight-search-system/internal/random"
	"github.com/cx-tal-miterani/flight-search-system/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var (
		from, to, date string
		passengers     int
		airlines       []string
		stops          []int
		maxPrice       float64
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search flights and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			departure, err := handlers.ParseDepartureDate(date)
			if err != nil {
				return fmt.Errorf("invalid --date %q", date)
			}
			if passengers < 1 || passengers > 9 {
				return fmt.Errorf("--passengers must be between 1 and 9")
			}

			params := &models.SearchParams{
				Origin:        strings.ToUpper(from),
				Destination:   strings.ToUpper(to),
				DepartureDate: departure,
				Passengers:    passengers,
				Stops:         stops,
			}
			for _, a := range airlines {
				params.Airlines = append(params.Airlines, strings.ToUpper(a))
			}
			if cmd.Flags().Changed("max-price") {
				params.MaxPrice = &maxPrice
			}

			svc := service.NewFlightService(random.Global(), cache.NewMemory(64, time.Minute), zap.NewNop())
			flights, err := svc.SearchFlights(cmd.Context(), params)
			if err != nil {
				return err
			}

			printFlights(cmd.OutOrStdout(), flights)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin airport code")
	cmd.Flags().StringVar(&to, "to", "", "destination airport code")
	cmd.Flags().StringVar(&date, "date", time.Now().AddDate(0, 0, 14).Format(service.DateLayout), "departure date")
	cmd.Flags().IntVarP(&passengers, "passengers", "p", 1, "number of passengers (1-9)")
	cmd.Flags().StringSliceVar(&airlines, "airlines", nil, "airline codes to include")
	cmd.Flags().IntSliceVar(&stops, "stops", nil, "stop counts to include")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

// NewAirportsCommand creates the airports command
func NewAirportsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "airports",
		Short: "List known airports",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewFlightService(random.Global(), cache.NewMemory(1, time.Minute), zap.NewNop())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME\tCITY\tCOUNTRY")
			for _, a := range svc.GetAirports(cmd.Context()) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Code, a.Name, a.City, a.Country)
			}
			return tw.Flush()
		},
	}
}

// NewAirlinesCommand creates the airlines command
func NewAirlinesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "airlines",
		Short: "List known airlines",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewFlightService(random.Global(), cache.NewMemory(1, time.Minute), zap.NewNop())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tNAME")
			for _, a := range svc.GetAirlines(cmd.Context()) {
				fmt.Fprintf(tw, "%s\t%s\n", a.Code, a.Name)
			}
			return tw.Flush()
		},
	}
}

func printFlights(w io.Writer, flights []*models.FlightInstance) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FLIGHT\tAIRLINE\tDEPART\tARRIVE\tDURATION\tSTOPS\tCLASS\tSEATS\tPRICE")
	for _, f := range flights {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%d\t%d %s\n",
			f.FlightNumber,
			f.Airline.Name,
			f.Departure.Time,
			f.Arrival.Time,
			models.FormatDuration(f.Duration),
			f.Stops,
			f.Class,
			f.SeatAvailability.Total(),
			f.BasePrice,
			f.Currency,
		)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d flights\n", len(flights))
}
