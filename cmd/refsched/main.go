package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/derekprior/refsched/internal/adapters/fixture"
	"github.com/derekprior/refsched/internal/adapters/xlsx"
	"github.com/derekprior/refsched/internal/scheduler"
	"github.com/derekprior/refsched/internal/schedparams"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "refsched",
		Short: "Referee scheduling MILP engine",
	}

	var templateDays, templateTimes []string
	var templateRefsFile, templateOutput string
	templateCmd := &cobra.Command{
		Use:          "template",
		Short:        "Create a blank referee availability template",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(templateDays, templateTimes, templateRefsFile, templateOutput)
		},
	}
	templateCmd.Flags().StringSliceVar(&templateDays, "days", []string{"Monday", "Tuesday", "Wednesday", "Thursday"}, "Days to include")
	templateCmd.Flags().StringSliceVar(&templateTimes, "times", []string{"6:30", "7:30", "8:30", "9:30"}, "Times to include")
	templateCmd.Flags().StringVar(&templateRefsFile, "refs", "", "Optional file with one referee name per line")
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "availability_template.xlsx", "Output Excel file path")

	var optimizeOutput, optimizeParams string
	optimizeCmd := &cobra.Command{
		Use:          "optimize <fixture.yaml>",
		Short:        "Build and solve the referee assignment MILP",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(args[0], optimizeParams, optimizeOutput)
		},
	}
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "output", "o", "schedule.xlsx", "Output Excel file path")
	optimizeCmd.Flags().StringVar(&optimizeParams, "params", "", "Optional YAML parameter overrides file")

	rootCmd.AddCommand(templateCmd, optimizeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTemplate(days, times []string, refsFile, outputPath string) error {
	var names []string
	if refsFile != "" {
		data, err := os.ReadFile(refsFile)
		if err != nil {
			return fmt.Errorf("reading referee names: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			name := strings.TrimSpace(line)
			if name != "" {
				names = append(names, name)
			}
		}
	}

	f, err := xlsx.GenerateAvailabilityTemplate(days, times, names)
	if err != nil {
		return fmt.Errorf("generating template: %w", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving template: %w", err)
	}

	fmt.Printf("✓ Availability template saved to %s\n", outputPath)
	return nil
}

func runOptimize(fixturePath, paramsPath, outputPath string) error {
	refs, games, err := fixture.Load(fixturePath)
	if err != nil {
		return fmt.Errorf("loading fixture: %w", err)
	}

	s := scheduler.New(refs, games)

	if paramsPath != "" {
		params, warnings, err := schedparams.LoadFromFile(paramsPath)
		if err != nil {
			return fmt.Errorf("loading parameters: %w", err)
		}
		for _, w := range warnings {
			fmt.Printf("⚠ %s\n", w)
		}
		s.SetParameters(paramsToOptions(params))
	}

	fmt.Printf("Scheduling %d referees across %d games...\n", len(refs), len(games))

	result := s.Optimize()

	switch result.Status {
	case scheduler.ResultOk:
		return reportOk(result, outputPath)
	case scheduler.ResultInfeasible:
		return reportInfeasible(result)
	default:
		return fmt.Errorf("optimize failed: %s", result.Message)
	}
}

func reportOk(result scheduler.Result, outputPath string) error {
	fmt.Printf("✓ %d assignments made\n", len(result.Assignments))

	fmt.Println("\nPer Referee Hours:")
	names := make([]string, 0, len(result.RefHours))
	for name := range result.RefHours {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-20s %d\n", name, result.RefHours[name])
	}
	fmt.Printf("\nHour spread: min=%d mean=%.1f max=%d\n",
		result.HourStats.Min, result.HourStats.Mean, result.HourStats.Max)

	if len(result.Warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  ⚠ %s\n", w)
		}
	}

	f, err := xlsx.ExportSchedule(result)
	if err != nil {
		return fmt.Errorf("exporting schedule: %w", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving schedule: %w", err)
	}
	fmt.Printf("\n✓ Schedule saved to %s\n", outputPath)
	return nil
}

func reportInfeasible(result scheduler.Result) error {
	fmt.Println("✗ No feasible schedule exists")
	if len(result.ViolatingConstraints) > 0 {
		fmt.Println("Violating constraints:")
		for _, c := range result.ViolatingConstraints {
			fmt.Printf("  - %s\n", c)
		}
	}
	if len(result.ViolatingBounds) > 0 {
		fmt.Println("Violating bounds:")
		for _, b := range result.ViolatingBounds {
			fmt.Printf("  - %s\n", b)
		}
	}
	if result.Message != "" {
		fmt.Println(result.Message)
	}
	return fmt.Errorf("infeasible instance")
}

func paramsToOptions(p schedparams.Params) map[string]float64 {
	return map[string]float64{
		"max_hours_per_week":         float64(p.MaxHoursPerWeek),
		"max_hours_per_day":          float64(p.MaxHoursPerDay),
		"weight_hour_balancing":      p.WeightHourBalancing,
		"weight_skill_combo":         p.WeightSkillCombo,
		"weight_low_skill_penalty":   p.WeightLowSkillPenalty,
		"weight_shift_block_penalty": p.WeightShiftBlockPenalty,
		"weight_effort_bonus":        p.WeightEffortBonus,
	}
}
