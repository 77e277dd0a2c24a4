// main package for newsletterctl CLI
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/cmd/ctl"
)

func main() {
	defer glog.Flush()
	rootCmd := &cobra.Command{
		Use:  "newsletterctl",
		Long: "newsletterctl is a CLI used to interact with the newsletter-manager API",
	}

	setupSubCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupSubCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(ctl.NewLoginCommand())
	rootCmd.AddCommand(ctl.NewNewslettersCommand())
	rootCmd.AddCommand(ctl.NewLogsCommand())
}

func init() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Infof("Unable to set logtostderr to true")
	}
}
