package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"nicspectra/internal/calc/ash"
	"nicspectra/internal/calc/export"
	"nicspectra/internal/calc/site"
	"nicspectra/internal/calc/wind"
	"nicspectra/internal/config"
	"nicspectra/internal/logging"
	"nicspectra/internal/refdata"
	"nicspectra/internal/server"
)

func windCmd() *cobra.Command {
	var (
		in       wind.Input
		heights  string
		zone     int
		group    string
		rough    string
		topo     string
		csvPath  string
		xlsxPath string
	)

	cmd := &cobra.Command{
		Use:   "wind",
		Short: "Compute RNC-07 static wind loads per floor",
		Long: `Compute per-floor pressures and shears for a rectangular building.

Example:
  nicspectra wind --width 20 --depth 15 --heights 4,3.5,3.5,3.5 --zone 1 \
    --group B --roughness R2 --topography T3 --csv viento.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := wind.ParseHeights(heights)
			if err != nil {
				return err
			}
			in.Heights = h
			in.Zone = wind.Zone(zone)
			in.Group = wind.Group(strings.ToUpper(group))
			in.Roughness = wind.Roughness(strings.ToUpper(rough))
			in.Topography = wind.Topography(strings.ToUpper(topo))

			res, err := wind.Calculate(in)
			if err != nil {
				return err
			}
			printWind(cmd.OutOrStdout(), res)
			if csvPath != "" {
				if err := writeFile(csvPath, func(w io.Writer) error { return export.WriteCSV(w, res.Table()) }); err != nil {
					return err
				}
			}
			if xlsxPath != "" {
				if err := writeFile(xlsxPath, func(w io.Writer) error { return export.WriteXLSX(w, res.Table()) }); err != nil {
					return err
				}
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&in.WidthM, "width", 0, "Building width B facing the wind (m) [required]")
	fl.Float64Var(&in.DepthM, "depth", 0, "Building depth L (m) [required]")
	fl.StringVar(&heights, "heights", "", "Story heights bottom to top, comma separated (m) [required]")
	fl.IntVar(&zone, "zone", 1, "Wind zone 1-3")
	fl.StringVar(&group, "group", "B", "Importance group A or B")
	fl.StringVar(&rough, "roughness", "R2", "Terrain roughness R1-R4")
	fl.StringVar(&topo, "topography", "T3", "Topography T1-T5")
	fl.StringVar(&csvPath, "csv", "", "Write rows as CSV")
	fl.StringVar(&xlsxPath, "xlsx", "", "Write rows and totals as XLSX")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("depth")
	cmd.MarkFlagRequired("heights")
	return cmd
}

func printWind(out io.Writer, res wind.Result) {
	fmt.Fprintf(out, "Vr = %.0f m/s  Ftr = %.2f  alpha = %.3f  delta = %.0f m  q leeward = %.2f kg/m2\n",
		res.VrMS, res.Ftr, res.Roughness.Alpha, res.Roughness.Delta, res.QLeewardKgM2)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Level\tZ (m)\tFa\tVd (m/s)\tq net (kg/m2)\tFx (Ton)\tFy (Ton)\t")
	for _, r := range res.Rows {
		fmt.Fprintf(w, "%d\t%.2f\t%.3f\t%.2f\t%.2f\t%.3f\t%.3f\t\n", r.Level, r.ZM, r.Fa, r.VdMS, r.QNetKgM2, r.FxTon, r.FyTon)
	}
	fmt.Fprintf(w, "Total\t\t\t\t\t%.3f\t%.3f\t\n", res.SumFxTon, res.SumFyTon)
	w.Flush()
}

func ashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ash [site]",
		Short: "Volcanic ash load for a department or municipality",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			load, risk := ash.Load(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %.1f kg/m2 (risk zone: %v)\n", name, load, risk)
			return nil
		},
	}
}

func sitesCmd(dataDir *string) *cobra.Command {
	var near string

	cmd := &cobra.Command{
		Use:   "sites",
		Short: "List sites with acceleration and zone, or the nearest to a point",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := refdata.Load(*dataDir)
			if err != nil {
				return err
			}
			resolver := site.NewResolver(tables)
			list := resolver.All()
			if near != "" {
				lat, lon, err := parseLatLon(near)
				if err != nil {
					return err
				}
				res, err := resolver.ByPoint(lat, lon)
				if err != nil {
					return err
				}
				list = []site.Resolution{res}
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SITE\tA0 (g)\tZONE\tASH (kg/m2)")
			for _, r := range list {
				fmt.Fprintf(w, "%s\t%.3f\t%s\t%.0f\n", r.Site.Name, r.Site.A0, r.Zone, r.AshKgM2)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&near, "near", "", "Point as lat,lon")
	return cmd
}

func parseLatLon(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected lat,lon, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	return lat, lon, nil
}

func systemsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "systems",
		Short: "List structural categories and systems with R, Omega0 and Cd",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := refdata.Load(*dataDir)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, c := range refdata.Categories {
				fmt.Fprintf(w, "%s (%s)\n", c.Label(), c)
				for _, s := range tables.Systems(c) {
					fmt.Fprintf(w, "  %s\tR=%.1f\tOmega0=%.1f\tCd=%.1f\n", s.Name, s.R, s.Omega, s.Cd)
				}
			}
			return w.Flush()
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
				cfg.DataDir = dir
			}
			closer := logging.Setup(cfg.Log)
			defer closer.Close()

			tables, err := refdata.Load(cfg.DataDir)
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return server.Run(ctx, cfg, tables)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides ADDR)")
	return cmd
}
