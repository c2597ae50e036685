package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vsinha/growplan/pkg/application/dto"
	"github.com/vsinha/growplan/pkg/growplan"
)

// Config holds configuration for output generation
type Config struct {
	Format     string
	OutputDir  string
	Verbose    bool
	PlanTime   time.Duration
	InputFiles map[string]string
}

// Generate creates output in the specified format
func Generate(result *dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "svg":
		return generateSVGOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.PlanResult, config Config) error {
	var out strings.Builder

	out.WriteString("📊 Production Plan Summary\n")
	out.WriteString("==========================\n\n")

	fmt.Fprintf(&out, "Plan Date: %s\n", result.PlanDate.Format("Mon, Jan 2 2006"))
	fmt.Fprintf(&out, "Deliveries Planned: %d\n", len(result.Plans))
	fmt.Fprintf(&out, "Floor Tasks: %d\n", len(result.Tasks))
	if config.PlanTime > 0 {
		fmt.Fprintf(&out, "Planning Time: %v\n", config.PlanTime)
	}
	out.WriteString("\n")

	if len(result.Plans) > 0 {
		out.WriteString("📋 Deliveries:\n")
		fmt.Fprintf(&out, "%-12s %-22s %-18s %-12s %6s  %-12s\n",
			"Order", "Customer", "Target", "Harvest", "Trays", "First Action")
		fmt.Fprintf(&out, "%-12s %-22s %-18s %-12s %6s  %-12s\n",
			"------------", "----------------------", "------------------", "------------", "------", "------------")

		for _, plan := range result.Plans {
			fmt.Fprintf(&out, "%-12s %-22s %-18s %-12s %6d  %-12s\n",
				plan.OrderID,
				plan.Customer,
				plan.TargetName,
				plan.HarvestDate.Format("2006-01-02"),
				planTrays(&plan),
				firstActionDate(&plan).Format("2006-01-02"))
		}
		out.WriteString("\n")
	}

	for _, plan := range result.Plans {
		if !plan.IsBlend() {
			continue
		}
		writeBlendDetail(&out, &plan)
	}

	if len(result.Tasks) > 0 {
		out.WriteString("📅 Task Schedule:\n")
		writeTaskSchedule(&out, result)
	}

	fmt.Print(out.String())

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "growplan_plan.txt")
		if err := os.WriteFile(filename, []byte(out.String()), 0644); err != nil {
			return fmt.Errorf("failed to write text file: %w", err)
		}
		if config.Verbose {
			fmt.Printf("💾 Results saved to: %s\n", filename)
		}
	}

	return nil
}

// writeBlendDetail renders one blend's ingredient breakdown and lead times
func writeBlendDetail(out *strings.Builder, plan *dto.OrderPlan) {
	fmt.Fprintf(out, "🌿 Blend Detail: %s (order %s, harvest %s)\n",
		plan.TargetName, plan.OrderID, plan.HarvestDate.Format("2006-01-02"))
	fmt.Fprintf(out, "  %-18s %6s %10s %6s  %-12s %s\n",
		"Ingredient", "Ratio", "Target Oz", "Trays", "Start", "Growth")

	for _, ing := range plan.Blend.Ingredients {
		fmt.Fprintf(out, "  %-18s %5s%% %10s %6d  %-12s %d days\n",
			ing.ProductName,
			ing.RatioPercent.StringFixed(0),
			ing.TargetOz.StringFixed(2),
			ing.TraysNeeded,
			ing.StartDate().Format("2006-01-02"),
			ing.TotalGrowthDays)
	}

	if plan.Lead != nil {
		fmt.Fprintf(out, "  %s\n", plan.Lead.Summary())
	}
	out.WriteString("\n")
}

// writeTaskSchedule renders the task list grouped by day with status
// relative to the plan date
func writeTaskSchedule(out *strings.Builder, result *dto.PlanResult) {
	var currentDay string
	for _, task := range result.Tasks {
		day := growplan.DayKey(task.DueDate)
		if day != currentDay {
			currentDay = day
			label := growplan.DateLabel(task.DueDate, result.PlanDate)
			if overdue := growplan.OverdueLabel(task.DueDate, result.PlanDate); overdue != "" {
				label = fmt.Sprintf("%s (%s)", label, overdue)
			}
			fmt.Fprintf(out, "\n%s - %s\n", task.DueDate.Format("2006-01-02"), label)
		}

		marker := " "
		if task.Completed {
			marker = "x"
		}
		fmt.Fprintf(out, "  [%s] %-14s %-18s %3d trays  (order %s)\n",
			marker,
			task.Stage,
			task.ProductName,
			task.Trays,
			task.OrderID)
	}
	out.WriteString("\n")
}

// planTrays sums the trays a delivery puts on the floor
func planTrays(plan *dto.OrderPlan) int64 {
	if plan.Crop != nil {
		return plan.Crop.TraysNeeded
	}
	if plan.Blend != nil {
		var total int64
		for _, ing := range plan.Blend.Ingredients {
			total += ing.TraysNeeded
		}
		return total
	}
	return 0
}

// firstActionDate returns the earliest dated task of a delivery
func firstActionDate(plan *dto.OrderPlan) time.Time {
	if plan.Crop != nil {
		return plan.Crop.StartDate()
	}
	if plan.Blend != nil {
		return plan.Blend.EarliestStartDate
	}
	return plan.HarvestDate
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.PlanResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		// Print to stdout
		fmt.Println(string(jsonData))
	} else {
		// Save to file
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "growplan_plan.json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write JSON file: %w", err)
		}

		if config.Verbose {
			fmt.Printf("💾 JSON results saved to: %s\n", filename)
		}
	}

	return nil
}

// generateSVGOutput renders the grow timeline chart to a file
func generateSVGOutput(result *dto.PlanResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for SVG format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	chart := NewTimelineChart(result)
	svg := chart.GenerateSVG(result)

	filename := filepath.Join(config.OutputDir, "growplan_timeline.svg")
	if err := os.WriteFile(filename, []byte(svg), 0644); err != nil {
		return fmt.Errorf("failed to write SVG file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 Timeline saved to: %s\n", filename)
	}

	return nil
}
