package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/service"
)

func newTable(title string, header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle(title)
	tw.AppendHeader(header)
	tw.SetStyle(table.StyleRounded)
	return tw
}

func rightAlign(columns ...int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, len(columns))
	for _, n := range columns {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	return configs
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func render(w io.Writer, tables ...table.Writer) error {
	for _, tw := range tables {
		if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
			return err
		}
	}
	return nil
}

func printAssessment(w io.Writer, result *estimation.AssessmentResult) error {
	req := result.Requirements

	summary := newTable("Requirements", table.Row{"Metric", "Value"})
	summary.AppendRows([]table.Row{
		{"Total users", req.TotalUsers},
		{"Concurrent users", req.TotalConcurrent},
		{"CPU cores", req.TotalCPUCores},
		{"Memory (GB)", req.TotalMemoryGB},
		{"Storage (GB)", req.TotalStorageGB},
		{"Monthly cost", money(req.MonthlyCost)},
		{"Annual cost", money(req.AnnualCost)},
	})
	summary.SetColumnConfigs(rightAlign(2))

	breakdown := newTable("User types", table.Row{"User type", "Bundle", "Users", "Concurrent", "CPU", "Memory (GB)", "Storage (GB)", "Monthly cost"})
	for _, b := range req.Breakdown {
		breakdown.AppendRow(table.Row{b.Name, b.Bundle, b.TotalUsers, b.ConcurrentUsers, b.CPUCores, b.MemoryGB, b.StorageGB, money(b.MonthlyCost)})
	}
	breakdown.SetColumnConfigs(rightAlign(3, 4, 5, 6, 7, 8))

	infra := newTable("Self-managed infrastructure", table.Row{"Component", "Detail", "Monthly cost"})
	for _, g := range []estimation.InstanceGroup{result.Compute.Standard, result.Compute.Graphics} {
		if g.Count == 0 {
			continue
		}
		infra.AppendRow(table.Row{
			fmt.Sprintf("Compute (%s)", g.Class),
			fmt.Sprintf("%d x %s", g.Count, g.InstanceType),
			money(g.MonthlyCost),
		})
	}
	infra.AppendRow(table.Row{"Storage", fmt.Sprintf("%.0f GB", result.Storage.TotalRequiredGB), money(result.Storage.Costs.TotalMonthly)})
	infra.AppendRow(table.Row{"Network", fmt.Sprintf("%.0f Mbps", result.Network.TotalBandwidthMbps), money(result.Network.Costs.TotalMonthly)})
	infra.SetColumnConfigs(rightAlign(3))

	comparison := newTable("Service comparison", table.Row{"Service", "Monthly cost", "Annual cost", "Migration", "Management"})
	for _, opt := range result.Comparison.Options {
		name := opt.Name
		if opt.Service == result.Recommendation.Service {
			name = text.FgGreen.Sprintf("%s *", opt.Name)
		}
		comparison.AppendRow(table.Row{name, money(opt.MonthlyCost), money(opt.AnnualCost), opt.MigrationComplexity, opt.ManagementOverhead})
	}
	comparison.SetColumnConfigs(rightAlign(2, 3))
	comparison.SetCaption("* %s", result.Recommendation.Reason)

	labor := newTable(
		fmt.Sprintf("Migration team (%s complexity, %d weeks)", result.Labor.Complexity, result.Labor.ProjectDurationWeeks),
		table.Row{"Role", "Count", "Rate", "Effort", "Hours", "Cost"},
	)
	for _, m := range result.Labor.Team {
		labor.AppendRow(table.Row{m.Role, m.Count, money(m.HourlyRate), fmt.Sprintf("%.0f%%", m.EffortPercent), fmt.Sprintf("%.0f", m.TotalHours), money(m.TotalCost)})
	}
	labor.AppendFooter(table.Row{"Team", "", "", "", "", money(result.Labor.TotalTeamCost)})
	labor.SetColumnConfigs(rightAlign(2, 3, 4, 5, 6))

	costs := newTable("Migration cost", table.Row{"Item", "Cost"})
	costs.AppendRows([]table.Row{
		{"Labor", money(result.Labor.CostBreakdown.Labor)},
		{"Training materials", money(result.Labor.AdditionalCosts.TrainingMaterials)},
		{"Project tools", money(result.Labor.AdditionalCosts.ProjectTools)},
		{"Contingency", money(result.Labor.AdditionalCosts.Contingency)},
	})
	costs.AppendFooter(table.Row{"Total", money(result.Labor.GrandTotalCost)})
	costs.SetColumnConfigs(rightAlign(2))

	roi := newTable(fmt.Sprintf("%d-year TCO", result.ROI.HorizonYears), table.Row{"Year", "Current", "WorkSpaces", "EC2 VDI"})
	for _, p := range result.ROI.TCO {
		roi.AppendRow(table.Row{p.Year, money(p.Current), money(p.WorkSpaces), money(p.EC2VDI)})
	}
	payback := "n/a"
	if result.ROI.PaybackMonths != nil {
		payback = fmt.Sprintf("%.1f months", *result.ROI.PaybackMonths)
	}
	roi.SetCaption("savings %s, ROI %.1f%%, payback %s", money(result.ROI.Savings), result.ROI.ROIPercent, payback)
	roi.SetColumnConfigs(rightAlign(2, 3, 4))

	return render(w, summary, breakdown, infra, comparison, labor, costs, roi)
}

func printCatalog(w io.Writer, catalog service.Catalog) error {
	profiles := newTable("User profiles", table.Row{"Type", "Name", "CPU", "Memory (GB)", "Storage (GB)", "Concurrency", "Bundle", "Price"})
	for _, p := range catalog.Profiles {
		profiles.AppendRow(table.Row{p.Type, p.Name, p.CPUCores, p.MemoryGB, p.StorageGB, fmt.Sprintf("%.0f%%", p.ConcurrentRatio*100), p.Bundle, money(p.BundleMonthlyPrice)})
	}
	profiles.SetColumnConfigs(rightAlign(3, 4, 5, 6, 8))

	services := newTable("Services", table.Row{"Key", "Name", "Best for", "Migration", "Management"})
	for _, s := range catalog.Services {
		services.AppendRow(table.Row{s.Key, s.Name, s.BestFor, s.MigrationComplexity, s.ManagementOverhead})
	}

	phases := newTable("Migration phases", table.Row{"Phase", "Weeks", "Deliverables"})
	for _, p := range catalog.Phases {
		phases.AppendRow(table.Row{p.Name, p.DurationWeeks, strings.Join(p.Deliverables, ", ")})
	}
	phases.SetColumnConfigs(rightAlign(2))

	roles := newTable("Roles", table.Row{"Role", "Rate", "Effort", "Description"})
	for _, r := range catalog.Roles {
		roles.AppendRow(table.Row{r.Name, money(r.HourlyRate), fmt.Sprintf("%.0f%%", r.EffortPercent), r.Description})
	}
	roles.SetColumnConfigs(rightAlign(2, 3))

	return render(w, profiles, services, phases, roles)
}
