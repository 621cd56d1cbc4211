package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/SDRAST/DatesTimes/pkg/angles"
	"github.com/SDRAST/DatesTimes/pkg/calendar"
	"github.com/SDRAST/DatesTimes/pkg/clock"
	"github.com/SDRAST/DatesTimes/pkg/epoch"
	"github.com/SDRAST/DatesTimes/pkg/julian"
	"github.com/SDRAST/DatesTimes/pkg/vsr"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "datestimes",
		Short: "DSN date and time conversions",
		Long: `datestimes converts between the date/time representations used in
radio-astronomy data acquisition pipelines:

  - calendar and ordinal (year, day-of-year) dates
  - Julian Date and Modified Julian Date
  - UNIX timestamps and plotting-axis date numbers
  - VSR time tuples, filename strings and script timestamps
  - IAU position-based source names`,
		Version: version,
	}

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(nowCmd())
	rootCmd.AddCommand(vsrCmd())
	rootCmd.AddCommand(mjdCmd())
	rootCmd.AddCommand(iauCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <YYYY-MM-DD>",
		Short: "Convert a session date to its other representations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, doy, err := calendar.ParseDate(args[0])
			if err != nil {
				return err
			}
			dow, err := calendar.DayOfWeek(date.Year, doy)
			if err != nil {
				return err
			}
			week, err := calendar.WeekNumber(date.Year, doy)
			if err != nil {
				return err
			}
			mjd, err := julian.MJD(date.Year, date.Month, date.Day)
			if err != nil {
				return err
			}
			fmt.Printf("date:         %s\n", date)
			fmt.Printf("day of year:  %d\n", doy)
			fmt.Printf("day of week:  %d (0 = Sunday)\n", dow)
			fmt.Printf("week number:  %d\n", week)
			fmt.Printf("Julian Date:  %.1f\n", julian.Date(date.Year, float64(doy)))
			fmt.Printf("MJD:          %.0f\n", mjd)
			fmt.Printf("datecode:     %s\n", calendar.DateCode(date.Year, "/", doy))
			return nil
		},
	}
}

func nowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the current UTC instant in the pipeline formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadVSRConfig(cmd)
			if err != nil {
				return err
			}
			clk := clock.System()
			now := clk.Now()
			week, year := calendar.CurrentWeek(clk)
			fmt.Printf("ISO:           %s\n", epoch.FormatISOTime(now))
			fmt.Printf("UNIX:          %.3f\n", epoch.TimeToUnix(now))
			fmt.Printf("MJD:           %.5f\n", julian.MJDFromUnix(epoch.TimeToUnix(now)))
			fmt.Printf("VSR timestamp: %s\n", vsr.Timestamp(clk, cfg))
			fmt.Printf("minute:        %s\n", epoch.NowString(clk))
			fmt.Printf("week:          %d of %d\n", week, year)
			return nil
		},
	}
	cmd.Flags().String("config", "", "VSR format config file (YAML)")
	return cmd
}

func vsrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vsr",
		Short: "VSR time-string operations",
	}
	cmd.PersistentFlags().String("config", "", "VSR format config file (YAML)")

	cmd.AddCommand(&cobra.Command{
		Use:   "parse <\"YYYY DDD sssss\">",
		Short: "Parse a VSR filename time string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := vsr.Parse(args[0])
			if err != nil {
				return err
			}
			instant, err := t.Time()
			if err != nil {
				return err
			}
			ts, err := t.Unix()
			if err != nil {
				return err
			}
			fmt.Printf("instant: %s\n", epoch.FormatISOTime(instant))
			fmt.Printf("UNIX:    %.3f\n", ts)
			fmt.Printf("MJD:     %.5f\n", julian.MJDFromUnix(ts))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "incr <\"YYYY DDD sssss\">",
		Short: "Advance a VSR time string by the emission interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadVSRConfig(cmd)
			if err != nil {
				return err
			}
			next, err := vsr.IncrementString(args[0], cfg)
			if err != nil {
				return err
			}
			fmt.Println(next)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "iso <\"YYYY DDD sssss\">",
		Short: "Convert a VSR time string to an ISO timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iso, err := vsr.StringToISO(args[0])
			if err != nil {
				return err
			}
			fmt.Println(iso)
			return nil
		},
	})

	return cmd
}

func mjdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mjd <value>",
		Short: "Convert a Modified Julian Date to UNIX time and date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mjd, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid MJD %q: %w", args[0], err)
			}
			ts := julian.MJDToUnix(mjd)
			year, yearDay := julian.YearDay(mjd + julian.MJDOffset)
			fmt.Printf("UNIX:        %.3f\n", ts)
			fmt.Printf("instant:     %s\n", epoch.FormatTimestampMilli(ts))
			fmt.Printf("year, DOY:   %d, %.5f\n", year, yearDay)
			return nil
		},
	}
}

func iauCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iau <lon> <lat>",
		Short: "Format an IAU position-based source name",
		Long: `Format an IAU position-based source name.

For modes J and B, lon is right ascension in hours and lat is declination
in degrees. For mode G both coordinates are decimal galactic degrees.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lon, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid longitude %q: %w", args[0], err)
			}
			lat, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid latitude %q: %w", args[1], err)
			}
			modeStr, _ := cmd.Flags().GetString("mode")
			name, err := angles.IAUName(lon, lat, angles.Mode(modeStr))
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		},
	}
	cmd.Flags().String("mode", "J", "name mode: J, B or G")
	return cmd
}

func loadVSRConfig(cmd *cobra.Command) (vsr.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return vsr.DefaultConfig(), nil
	}
	return vsr.LoadConfig(path)
}
