package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"nicspectra/internal/calc/export"
	"nicspectra/internal/calc/plot"
	"nicspectra/internal/calc/report"
	"nicspectra/internal/calc/seismic"
	"nicspectra/internal/refdata"
)

type seismicFlags struct {
	site, soil, vs30Site   string
	lat, lon, vs30         float64
	group, category, sys   string
	torsion, soft, weak    string
	reentrant, diaphragm   bool
	nonParallel, mass, geo bool
	txt, csv, png, pdf     string
	project, author        string
}

func seismicCmd(dataDir *string) *cobra.Command {
	var f seismicFlags

	cmd := &cobra.Command{
		Use:   "seismic",
		Short: "Compute NSM-22 design parameters and the response spectrum",
		Long: `Resolve the site, classify the soil and derive the design spectrum.

Examples:
  nicspectra seismic --site MANAGUA --vs30 400 --group C --category bearing-wall \
    --system "Muros de cortante especiales de concreto reforzado" --txt espectro.txt

  nicspectra seismic --lat 12.13 --lon -86.25 --soil D --group B \
    --category moment-frame --system "Marcos especiales de acero a momento" --pdf memoria.pdf`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := refdata.Load(*dataDir)
			if err != nil {
				return err
			}
			in, err := f.input(cmd)
			if err != nil {
				return err
			}
			res, err := seismic.NewEngine(tables).Calculate(in)
			if err != nil {
				return err
			}
			printSeismic(cmd.OutOrStdout(), res)
			return f.writeArtifacts(res)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.site, "site", "", "Site name from the acceleration table")
	fl.Float64Var(&f.lat, "lat", 0, "Latitude, used with --lon instead of --site")
	fl.Float64Var(&f.lon, "lon", 0, "Longitude")
	fl.StringVar(&f.soil, "soil", "", "Soil class A-E (overrides Vs30)")
	fl.StringVar(&f.vs30Site, "vs30-site", "", "Managua Vs30 site name")
	fl.Float64Var(&f.vs30, "vs30", 0, "Shear wave velocity Vs30 (m/s)")
	fl.StringVar(&f.group, "group", "", "Importance group A-D [required]")
	fl.StringVar(&f.category, "category", "", "Structural category (bearing-wall, structural-wall, moment-frame, dual-special, dual-intermediate, cantilever) [required]")
	fl.StringVar(&f.sys, "system", "", "Structural system name [required]")
	fl.StringVar(&f.torsion, "torsion", "none", "Torsional irregularity: none, standard, extreme")
	fl.StringVar(&f.soft, "soft-story", "none", "Soft story irregularity: none, standard, extreme")
	fl.StringVar(&f.weak, "weak-story", "none", "Weak story irregularity: none, standard, extreme")
	fl.BoolVar(&f.reentrant, "reentrant-corner", false, "Re-entrant corner irregularity")
	fl.BoolVar(&f.diaphragm, "diaphragm", false, "Diaphragm discontinuity")
	fl.BoolVar(&f.nonParallel, "non-parallel", false, "Non-parallel lateral systems")
	fl.BoolVar(&f.mass, "mass", false, "Mass irregularity")
	fl.BoolVar(&f.geo, "geometry", false, "Vertical geometric irregularity")
	fl.StringVar(&f.txt, "txt", "", "Write the design spectrum as TXT")
	fl.StringVar(&f.csv, "csv", "", "Write both spectra as CSV")
	fl.StringVar(&f.png, "png", "", "Write the spectrum plot as PNG")
	fl.StringVar(&f.pdf, "pdf", "", "Write the PDF report")
	fl.StringVar(&f.project, "project", "", "Project name for the report")
	fl.StringVar(&f.author, "author", "", "Author for the report")

	cmd.MarkFlagRequired("group")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("system")
	cmd.MarkFlagsRequiredTogether("lat", "lon")
	return cmd
}

func (f seismicFlags) input(cmd *cobra.Command) (seismic.Input, error) {
	cat, err := refdata.ParseCategory(f.category)
	if err != nil {
		return seismic.Input{}, err
	}
	in := seismic.Input{
		Site:      f.site,
		SoilClass: f.soil,
		Vs30Site:  f.vs30Site,
		Vs30:      f.vs30,
		Group:     seismic.ImportanceGroup(f.group),
		Category:  cat,
		System:    f.sys,
		Irregularities: seismic.Irregularities{
			Torsion:         seismic.Level(f.torsion),
			ReentrantCorner: f.reentrant,
			Diaphragm:       f.diaphragm,
			NonParallelAxes: f.nonParallel,
			SoftStory:       seismic.Level(f.soft),
			WeakStory:       seismic.Level(f.weak),
			Mass:            f.mass,
			Geometry:        f.geo,
		},
	}
	if cmd.Flags().Changed("lat") {
		in.Location = &refdata.LatLon{Lat: f.lat, Lon: f.lon}
	}
	return in, nil
}

func printSeismic(out io.Writer, res seismic.Result) {
	p := res.Params
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Site\t%s (zone %s, a0 = %.3f g)\n", res.Site.Site.Name, res.Site.Zone, p.RockA0)
	fmt.Fprintf(w, "Soil\t%s (%s)\n", res.Soil, res.SoilSource)
	fmt.Fprintf(w, "Group\t%s\n", res.GroupLabel)
	fmt.Fprintf(w, "Design category\t%s\n", res.CDS)
	fmt.Fprintf(w, "System\t%s (R = %.2f, Omega0 = %.2f, Cd = %.2f)\n", res.System.Name, p.R, p.Omega, p.Cd)
	fmt.Fprintf(w, "Phi p / Phi e\t%.3f / %.3f\n", p.PhiP, p.PhiE)
	fmt.Fprintf(w, "R0\t%.3f\n", p.R0)
	fmt.Fprintf(w, "Fas / I\t%.3f / %.2f\n", p.Fas, p.I)
	fmt.Fprintf(w, "A0\t%.4f g\n", p.A0)
	fmt.Fprintf(w, "Tb / Tc / Td\t%.3f / %.3f / %.3f s\n", p.Tb, p.Tc, p.Td)
	fmt.Fprintf(w, "Ash load\t%.1f kg/m2\n", res.Site.AshKgM2)
	_, peak := res.Spectrum.Peak()
	fmt.Fprintf(w, "Peak design Sa\t%.4f g\n", peak)
	w.Flush()
}

func (f seismicFlags) writeArtifacts(res seismic.Result) error {
	if f.txt != "" {
		if err := writeFile(f.txt, func(w io.Writer) error { return export.WriteSpectrumTXT(w, res.Spectrum) }); err != nil {
			return err
		}
	}
	if f.csv != "" {
		if err := writeFile(f.csv, func(w io.Writer) error { return export.WriteSpectrumCSV(w, res.Spectrum) }); err != nil {
			return err
		}
	}
	if f.png != "" {
		err := writeFile(f.png, func(w io.Writer) error {
			return plot.WritePNG(w, res.Spectrum, plot.Options{Title: res.PlotTitle()})
		})
		if err != nil {
			return err
		}
	}
	if f.pdf != "" {
		rep, err := report.Build(res, report.Meta{Project: f.project, Author: f.author}, time.Now())
		if err != nil {
			return err
		}
		if err := writeFile(f.pdf, rep.Write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
