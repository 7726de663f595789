/*
Copyright 2026 Codenotary Inc. All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sqlbrowser

import (
	"context"
	"io"
	"os"

	"github.com/codenotary/sqlbrowser/cmd/helper"
	"github.com/codenotary/sqlbrowser/pkg/connection"
	"github.com/codenotary/sqlbrowser/pkg/executor"
	"github.com/codenotary/sqlbrowser/pkg/logger"
	"github.com/codenotary/sqlbrowser/pkg/presenter"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type commandline struct {
	config         helper.Options
	passwordReader helper.PasswordReader
	stdout         io.Writer
}

func newCommandline() *commandline {
	return &commandline{
		passwordReader: helper.DefaultPasswordReader,
		stdout:         os.Stdout,
	}
}

// NewCommand builds the sqlbrowser root command
func NewCommand() *cobra.Command {
	cl := newCommandline()

	cmd := &cobra.Command{
		Use:   "sqlbrowser",
		Short: "Interactive browser and editor for MySQL compatible databases",
		Long: `Interactive browser and editor for MySQL compatible databases.

Environment variables:
  SQLBROWSER_ADDRESS=localhost
  SQLBROWSER_PORT=3306
  SQLBROWSER_USERNAME=root
  SQLBROWSER_PASSWORD=
  SQLBROWSER_DATABASE=
  SQLBROWSER_URI=mysql://root@localhost:3306/
  SQLBROWSER_CONNECT_TIMEOUT=5000
  SQLBROWSER_LOG_LEVEL=info
  SQLBROWSER_METRICS_ADDRESS=`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              cl.run,
	}

	cobra.OnInitialize(func() { cl.config.InitConfig("sqlbrowser") })

	if err := cl.configureFlags(cmd); err != nil {
		helper.QuitToStdErr(err)
	}

	cmd.AddCommand(versionCmd())

	return cmd
}

// Execute runs the root command and quits on error
func Execute() {
	if err := NewCommand().Execute(); err != nil {
		helper.QuitToStdErr(err)
	}
}

func (cl *commandline) run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	opts, err := options()
	if err != nil {
		return err
	}

	if viper.GetBool("ask-password") {
		pass, err := cl.passwordReader.Read("Password: ")
		if err != nil {
			return err
		}
		opts.WithPassword(string(pass))
	}

	log, err := logger.NewLogger(loggerOptions())
	if err != nil {
		return err
	}
	defer log.Close()

	if addr := viper.GetString("metrics-address"); addr != "" {
		srv := StartMetrics(addr, log)
		defer srv.Close()
	}

	mgr := connection.NewManager(opts, log)

	conn, err := mgr.Connect(ctx)
	if err != nil {
		return err
	}
	defer mgr.Disconnect()

	out := presenter.NewTerminal(cl.stdout, viper.GetBool("no-color"))
	out.ShowStatus("Connected to MySQL server successfully!", presenter.LevelSuccess)

	l := liner.NewLiner()
	defer l.Close()
	l.SetCtrlCAborts(true)

	r := newRepl(ctx, conn, executor.New(log, executor.NewPrometheusMetrics()), executor.NewSession(""), out, l)
	l.SetCompleter(r.complete)

	if opts.Database != "" {
		r.Execute("use " + opts.Database)
	}

	r.Run()

	return nil
}
