package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/planbiir/gsplit/internal/config"
	"github.com/planbiir/gsplit/internal/gpx"
	"github.com/planbiir/gsplit/internal/pipeline"
	"github.com/planbiir/gsplit/internal/split"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "gsplit [flags] file.gpx...",
	Short: "Merge, clean, and split GPS tracks by day and size",
	Long: `gsplit merges the track points of one or more GPX files into a single
chronological stream, drops stationary noise and low-precision fixes, and
writes the cleaned stream back out twice: once split by calendar day and
once split by a maximum point count per file.`,
	Example: `  gsplit -o out track1.gpx track2.gpx
  gsplit -o out -z 2 --prefix vacation *.gpx
  gsplit --dry-run --stats-json track.gpx`,
	Args:          cobra.ArbitraryArgs,
	Version:       version,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	f.StringP("out", "o", ".", "Destination directory for output files")
	f.IntP("max-points", "m", 500, "Maximum points per size-split file")
	f.IntP("tz-offset", "z", 0, "Timezone offset in hours applied before day grouping")
	f.Float64P("min-move", "d", 1.25, "Minimum movement in meters between kept points")
	f.Float64P("hdop-max", "p", 15, "Maximum acceptable HDOP value")
	f.Bool("filter", true, "Enable distance/precision filtering")
	f.Bool("drop-unsorted", false, "Drop out-of-order points instead of sorting")
	f.String("prefix", "", "Optional output filename prefix")
	f.Bool("dry-run", false, "Compute and report without writing files")
	f.Bool("stats-json", false, "Print run statistics as JSON")
	f.BoolP("verbose", "v", false, "Verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if len(args) == 0 {
		log.Warn("no input files given, nothing to do")
		return nil
	}

	docs := make([]*gpx.GPX, 0, len(args))
	for _, name := range args {
		doc, err := gpx.Parse(name)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"file": name, "tracks": len(doc.Tracks)}).Debug("parsed input")
		docs = append(docs, doc)
	}

	points, err := gpx.Flatten(docs...)
	if err != nil {
		return err
	}
	log.Infof("ingested %d points from %d files", len(points), len(docs))

	res, err := pipeline.Run(points, cfg)
	if err != nil {
		return err
	}

	if !res.Sorted {
		if cfg.DropUnsorted {
			log.Warn("input not in chronological order, dropping out-of-order points")
		} else {
			log.Warn("input not in chronological order, sorting by timestamp")
		}
	}

	if cfg.StatsJSON {
		data, err := json.MarshalIndent(res.Stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		fmt.Println(string(data))
	} else {
		log.Infof("filter kept %d of %d points (%d too close, %d imprecise, %d unsorted)",
			res.Stats.Kept, res.Stats.Input,
			res.Stats.DroppedMove, res.Stats.DroppedHDOP, res.Stats.DroppedUnsorted)
	}

	if res.NoPoints {
		log.Warn("no points remain after filtering, nothing to write")
		return nil
	}

	if cfg.DryRun {
		log.Infof("dry run completed: %d day files, %d size files would be written",
			len(res.ByDay), len(res.BySize))
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	written := 0
	for _, units := range [][]split.OutputUnit{res.ByDay, res.BySize} {
		for _, u := range units {
			if err := writeUnit(cfg.OutputDir, cfg.Prefix, u); err != nil {
				return err
			}
			written++
		}
	}

	log.Infof("wrote %d files to %s", written, cfg.OutputDir)
	return nil
}

func writeUnit(dir, prefix string, u split.OutputUnit) error {
	name := u.Filename(prefix)

	data, n, err := gpx.Serialize(name, u.Points)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.WithFields(log.Fields{"file": path, "points": n}).Debug("wrote output")
	return nil
}
