package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coastrun/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List configured levels",
	Long:  `Shows the levels of the route as loaded from the runner config.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	if len(cfg.Levels) == 0 {
		fmt.Println("No levels configured.")
		return nil
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range cfg.Levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %7s  %7s  %-8s  %s\n", "#", maxNameLen, "Name", "Length", "Flag", "Track", "Features")
	fmt.Printf("  %-3s  %-*s  %7s  %7s  %-8s  %s\n", "-", maxNameLen, "----", "------", "----", "-----", "--------")
	for _, l := range cfg.Levels {
		fmt.Printf("  %-3d  %-*s  %6.0fm  %6.0fm  %-8s  %s\n",
			l.Number, maxNameLen, l.Name,
			l.Length/cfg.World.UnitsPerMeter, l.FlagX/cfg.World.UnitsPerMeter,
			l.Track, strings.Join(levelFeatures(cfg, l), ", "))
	}

	fmt.Println()
	fmt.Println("Run 'coastrun play --level <n>' to start at a level.")
	return nil
}

// levelFeatures names what a level adds to the route.
func levelFeatures(cfg config.RunnerConfig, l config.LevelConfig) []string {
	features := []string{"joggers", "birds"}
	if l.Number >= cfg.NPC.SkaterFromLevel {
		features = append(features, "skaters")
	}
	if l.Number >= cfg.NPC.BeagleFromLevel {
		features = append(features, "beagle")
	}
	if l.Number >= cfg.NPC.CrowdedFromLevel {
		features = append(features, "crowds")
	}
	if len(l.Hazards) > 0 {
		features = append(features, fmt.Sprintf("%d hazards", len(l.Hazards)))
	}
	if l.SpeedMultiplier > 0 && l.SpeedMultiplier != 1 {
		features = append(features, fmt.Sprintf("speed x%.2g", l.SpeedMultiplier))
	}
	return features
}
