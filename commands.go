package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ilcquote/config"
	"ilcquote/services"
	"ilcquote/templates"
)

type quoteFlags struct {
	name    string
	email   string
	area    float64
	service string
	finish  string
	extras  []string
	notes   string
	format  string
	out     string
}

func newQuoteCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	var f quoteFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute an estimate and write it as a PDF, workbook or print page",
		Long: `Computes the same planning range as the website quote form and writes the
estimate document to a file. Without --out the default estimate filename is used.`,
		Example: `  ilcquote quote --service kitchen --area 200 --finish premium --extras bathroom --name "Gagan Dhillon"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, cfg, logger, f)
		},
	}

	cmd.Flags().StringVar(&f.name, "name", "", "client name")
	cmd.Flags().StringVar(&f.email, "email", "", "client email")
	cmd.Flags().Float64Var(&f.area, "area", 0, "approximate finished area in sq. ft.")
	cmd.Flags().StringVar(&f.service, "service", "", "project type: basement, suite, kitchen, bathroom, reno")
	cmd.Flags().StringVar(&f.finish, "finish", string(services.FinishStandard), "finish level: standard, mid, premium")
	cmd.Flags().StringSliceVar(&f.extras, "extras", nil, "add-ons: bathroom, kitchenette, separate-entry, exterior")
	cmd.Flags().StringVar(&f.notes, "notes", "", "client notes")
	cmd.Flags().StringVar(&f.format, "format", "pdf", "output format: pdf, xlsx, print")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output file")

	return cmd
}

func runQuote(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, f quoteFlags) error {
	in := services.QuoteInput{
		Name:    strings.TrimSpace(f.name),
		Email:   strings.TrimSpace(f.email),
		Area:    f.area,
		Service: services.ParseServiceType(f.service),
		Finish:  services.ParseFinishLevel(f.finish),
		Notes:   strings.TrimSpace(f.notes),
	}
	for _, raw := range f.extras {
		if ex := services.ParseExtra(raw); ex != services.ExtraUnknown {
			in.Extras = append(in.Extras, ex)
		}
	}

	result := services.ComputeQuote(in)
	doc := services.BuildEstimateDocument(result, time.Now().In(cfg.Location()), cfg.Issuer())

	var (
		body     []byte
		filename string
		err      error
	)
	switch f.format {
	case "pdf":
		out := services.ExportEstimate(doc,
			services.PDFRenderer(cfg.PDFSettings()),
			templates.PrintRenderer(context.Background()))
		if out.Kind == services.ExportPrint {
			logger.Warn("pdf unavailable, wrote print page instead", zap.Error(out.Err))
		}
		body, filename = out.Body, out.Filename
	case "xlsx":
		body, err = services.GenerateEstimateExcel(doc)
		filename = services.EstimateWorkbookFilename(cfg.Estimate.Prefix, result.Name)
	case "print":
		body, err = templates.PrintRenderer(context.Background())(doc)
		filename = strings.TrimSuffix(doc.Filename, ".pdf") + ".html"
	default:
		return fmt.Errorf("unknown format %q: must be pdf, xlsx or print", f.format)
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", f.format, err)
	}

	if f.out != "" {
		filename = f.out
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Estimate %s: %s\nWrote %s\n",
		doc.Number, services.EstimateRange(result.Low, result.High), filename)
	return nil
}

func newConfigCmd(cfgPath string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the site configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
