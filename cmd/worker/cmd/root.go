package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/budhip/go-fp-ledger/cmd/setup"
	helperFlag "github.com/budhip/go-fp-ledger/internal/common/flag"
	"github.com/budhip/go-fp-ledger/internal/common/graceful"
	"github.com/budhip/go-fp-ledger/internal/common/log"
	"github.com/budhip/go-fp-ledger/internal/deliveries/job"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date, YYYY-MM-DD")
	runJobCmd.Flags().Bool(runJobCmdDryRun, false, "list what would run without writing")
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	// routes only hold the service, nothing is called while listing
	for version, names := range job.New(nil).Names() {
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(ccmd.OutOrStdout(), "version=%s, name=%s\n", version, name)
		}
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -v={job-version} -d={job-date}",
		RunE:    runJob,
	}
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
	runJobCmdDate    = "date"
	runJobCmdDryRun  = "dry-run"
)

func runJob(ccmd *cobra.Command, args []string) error {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)
	dryRun, _ := ccmd.Flags().GetBool(runJobCmdDryRun)

	s, stoppers, err := setup.Init("job")
	if err != nil {
		graceful.StopProcess(5*time.Second, stoppers...)
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)

	j := job.New(s.Service.Recurrence)
	err = j.Start(ctx, helperFlag.Job{
		JobName: name,
		Version: version,
		Date:    date,
		DryRun:  dryRun,
	})
	log.Info(ctx, "job server stopped!")

	return err
}
