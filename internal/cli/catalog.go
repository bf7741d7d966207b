package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kubev2v/vdi-migration-planner/internal/estimation"
	"github.com/kubev2v/vdi-migration-planner/internal/estimation/calculators"
	"github.com/kubev2v/vdi-migration-planner/internal/service"
)

type CatalogOptions struct {
	GlobalOptions

	out io.Writer
}

func DefaultCatalogOptions() *CatalogOptions {
	return &CatalogOptions{
		GlobalOptions: DefaultGlobalOptions(),
		out:           os.Stdout,
	}
}

func NewCmdCatalog() *cobra.Command {
	o := DefaultCatalogOptions()
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Display the user profiles, services, phases and roles used for estimation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

func (o *CatalogOptions) Run(ctx context.Context, args []string) error {
	srv := service.NewAssessmentService(estimation.NewEstimator(calculators.DefaultStages(estimation.DefaultRates())))
	catalog := srv.Catalog(ctx)

	return o.print(o.out, catalog, func(w io.Writer) error {
		return printCatalog(w, catalog)
	})
}
