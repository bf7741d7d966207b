package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kubev2v/vdi-migration-planner/internal/config"
	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/estimation/calculators"
	"github.com/kubev2v/vdi-migration-planner/internal/reference"
	"github.com/kubev2v/vdi-migration-planner/internal/service"
)

type AssessOptions struct {
	GlobalOptions

	TaskWorkers        int
	KnowledgeWorkers   int
	PowerUsers         int
	GraphicsUsers      int
	Complexity         string
	TargetService      string
	CurrentEnvironment string
	Timeline           string
	RatesFile          string

	input estimation.AssessmentInput
	out   io.Writer
}

func DefaultAssessOptions() *AssessOptions {
	return &AssessOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Complexity:    string(reference.Medium),
		out:           os.Stdout,
	}
}

func NewCmdAssess() *cobra.Command {
	o := DefaultAssessOptions()
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Estimate sizing, cost and migration effort for a desktop population",
		Example: "  planner assess --task-workers 200 --knowledge-workers 300 --complexity High\n" +
			"  planner assess --power-users 40 --graphics-users 10 -o json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *AssessOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.IntVar(&o.TaskWorkers, "task-workers", o.TaskWorkers, "Number of task workers")
	fs.IntVar(&o.KnowledgeWorkers, "knowledge-workers", o.KnowledgeWorkers, "Number of knowledge workers")
	fs.IntVar(&o.PowerUsers, "power-users", o.PowerUsers, "Number of power users")
	fs.IntVar(&o.GraphicsUsers, "graphics-users", o.GraphicsUsers, "Number of graphics users")
	fs.StringVar(&o.Complexity, "complexity", o.Complexity, "Migration complexity. One of: (Low, Medium, High).")
	fs.StringVar(&o.TargetService, "target-service", o.TargetService, "Target service. One of: (workspaces, appstream, ec2_vdi).")
	fs.StringVar(&o.CurrentEnvironment, "current-environment", o.CurrentEnvironment, "Name of the current VDI platform")
	fs.StringVar(&o.Timeline, "timeline", o.Timeline, "Timeline preference. One of: (Aggressive, Standard, Conservative).")
	fs.StringVar(&o.RatesFile, "rates-file", o.RatesFile, "Path to a YAML or JSON rate table overriding the defaults")
}

func (o *AssessOptions) Complete(cmd *cobra.Command, args []string) error {
	complexity, err := reference.ParseComplexity(o.Complexity)
	if err != nil {
		return err
	}

	o.input = estimation.AssessmentInput{
		Population: estimation.Population{
			reference.TaskWorker:      o.TaskWorkers,
			reference.KnowledgeWorker: o.KnowledgeWorkers,
			reference.PowerUser:       o.PowerUsers,
			reference.GraphicsUser:    o.GraphicsUsers,
		},
		Complexity:         complexity,
		CurrentEnvironment: o.CurrentEnvironment,
	}

	if o.TargetService != "" {
		if o.input.TargetService, err = reference.ParseServiceName(o.TargetService); err != nil {
			return err
		}
	}
	if o.Timeline != "" {
		if o.input.Timeline, err = reference.ParseTimeline(o.Timeline); err != nil {
			return err
		}
	}

	return nil
}

func (o *AssessOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	for u, n := range o.input.Population {
		if n < 0 {
			return fmt.Errorf("%s count must be non-negative, got %d", u, n)
		}
	}
	if o.input.Population.Total() == 0 {
		return fmt.Errorf("at least one user is required: set --task-workers, --knowledge-workers, --power-users or --graphics-users")
	}
	return nil
}

func (o *AssessOptions) Run(ctx context.Context, args []string) error {
	rates, err := config.LoadRates(o.RatesFile)
	if err != nil {
		return err
	}

	srv := service.NewAssessmentService(estimation.NewEstimator(calculators.DefaultStages(rates)))
	result, err := srv.RunAssessment(ctx, o.input)
	if err != nil {
		return err
	}

	return o.print(o.out, result, func(w io.Writer) error {
		return printAssessment(w, result)
	})
}
