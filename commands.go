package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfg "github.com/maastricht-university/presentation-eval/config"
	"github.com/maastricht-university/presentation-eval/evaluation"
	"github.com/maastricht-university/presentation-eval/orchestrator"
	"github.com/maastricht-university/presentation-eval/report"
)

var version = "dev"

// app carries what the persistent pre-run resolved for the subcommands.
type app struct {
	configPath string
	logLevel   string

	conf *cfg.Root
	log  *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "presentation-eval",
		Short: "Score recorded presentations from analyzer results",
		Long: `presentation-eval turns the outputs of the motion, expression, speech and
content analyzers of one recorded presentation into a weighted score, a grade,
per-category feedback and improvement suggestions.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default config/$CONFIG_ENV/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override pipeline.log_level")

	cmd.AddCommand(newEvaluateCommand(a))
	cmd.AddCommand(newAnalyzeCommand(a))
	cmd.AddCommand(newConfigCommand(a))
	return cmd
}

func (a *app) setup(logOut io.Writer) error {
	conf, err := cfg.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		conf.Pipeline.LogLevel = a.logLevel
	}

	log := logrus.New()
	log.SetOutput(logOut)
	lvl, err := logrus.ParseLevel(conf.Pipeline.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(lvl)
	if conf.Pipeline.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	a.conf, a.log = conf, log
	return nil
}

func (a *app) evaluator() (*evaluation.Evaluator, error) {
	return evaluation.NewEvaluator(a.conf.Evaluation, evaluation.WithLogger(a.log))
}

type outputFlags struct {
	format string
	view   string
	out    string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "text", "output format: text, json, yaml, markdown, html")
	cmd.Flags().StringVar(&o.view, "view", "full", "json/yaml projection: full, summary, scorecard, feedback")
	cmd.Flags().StringVarP(&o.out, "output", "o", "", "write the report to a file instead of stdout")
}

func (o *outputFlags) write(stdout io.Writer, rep *evaluation.Report) error {
	f, err := report.ParseFormat(o.format)
	if err != nil {
		return err
	}
	v, err := report.ParseView(o.view)
	if err != nil {
		return err
	}
	if o.out == "" {
		return report.Render(stdout, rep, f, v)
	}

	fd, err := os.Create(o.out)
	if err != nil {
		return err
	}
	if err := report.Render(fd, rep, f, v); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func newEvaluateCommand(a *app) *cobra.Command {
	var (
		out            outputFlags
		transcriptPath string
	)
	cmd := &cobra.Command{
		Use:   "evaluate <raw_results.json>",
		Short: "Evaluate saved analyzer results",
		Long: `Evaluate a saved raw-results document (JSON or JSON5). The transcript is
taken from its "transcript" key unless --transcript names a text file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, transcript, err := orchestrator.LoadRawResults(args[0])
			if err != nil {
				return err
			}
			if transcriptPath != "" {
				b, err := os.ReadFile(transcriptPath)
				if err != nil {
					return fmt.Errorf("%w: transcript: %v", orchestrator.ErrInvalidInput, err)
				}
				transcript = strings.TrimSpace(string(b))
			}

			e, err := a.evaluator()
			if err != nil {
				return err
			}
			return out.write(cmd.OutOrStdout(), e.Evaluate(raw, transcript))
		},
	}
	out.register(cmd)
	cmd.Flags().StringVarP(&transcriptPath, "transcript", "t", "", "plain-text transcript file")
	return cmd
}

func newAnalyzeCommand(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "analyze <recording>",
		Short: "Run the analyzers on a recording, then evaluate and save the run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			e, err := a.evaluator()
			if err != nil {
				return err
			}
			p := orchestrator.NewPipeline(a.conf, e, a.log)
			res, err := p.Run(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "analysis %s saved to %s\n", res.Record.AnalysisID, res.Dir)
			return out.write(cmd.OutOrStdout(), res.Report)
		},
	}
	out.register(cmd)
	return cmd
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.conf); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func execute() error {
	return newRootCommand().ExecuteContext(context.Background())
}
