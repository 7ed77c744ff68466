// wmbatch applies a saved watermark template to a batch of images from
// the command line. It is thin glue over the export pipeline; all
// placement and compositing decisions come from the template.
package main

import (
	"context"
	"fmt"
	"os"

	"watermark-studio/internal/config"
	"watermark-studio/internal/repository/source"
	"watermark-studio/internal/repository/template"
	"watermark-studio/internal/usecase/export"
	"watermark-studio/internal/usecase/layer"
	"watermark-studio/internal/usecase/preview"

	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/zlog"
)

func main() {
	zlog.Init()

	var (
		cfgPath      string
		templateName string
		outputDir    string
	)

	root := &cobra.Command{
		Use:           "wmbatch",
		Short:         "Batch watermark export from saved templates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")

	exportCmd := &cobra.Command{
		Use:   "export [paths...]",
		Short: "Watermark and export the given files or directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), cfgPath, templateName, outputDir, args)
		},
	}
	exportCmd.Flags().StringVarP(&templateName, "template", "t", "", "template name to apply")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "", "output directory (overrides template)")
	exportCmd.MarkFlagRequired("template")

	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "List saved templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cfgPath)
		},
	}

	root.AddCommand(exportCmd, templatesCmd)

	if err := root.ExecuteContext(context.Background()); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("wmbatch failed")
	}
}

func runExport(ctx context.Context, cfgPath, templateName, outputDir string, inputs []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	doc, err := template.NewStore(cfg.Templates.Dir).Load(templateName)
	if err != nil {
		return err
	}
	if outputDir != "" {
		doc.Export.OutputDir = outputDir
	}
	if err := doc.Spec.Validate(); err != nil {
		return err
	}

	paths := source.NewLoader(cfg.Thumbnails.Width, cfg.Thumbnails.Height).Collect(inputs)
	if len(paths) == 0 {
		return fmt.Errorf("no supported images found in %v", inputs)
	}

	renderer, err := layer.NewRenderer()
	if err != nil {
		return err
	}

	composer := preview.NewComposer(renderer, cfg.Preview.MaxWidth, cfg.Preview.MaxHeight)
	exporter := export.NewExporter(renderer, composer, &zlog.Logger, cfg.Export.Workers)

	report, err := exporter.ExportBatch(ctx, paths, doc.Spec, doc.Offset, doc.Export)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "exported %d, failed %d\n", report.Succeeded, report.Failed)
	return nil
}

func runTemplates(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	names, err := template.NewStore(cfg.Templates.Dir).List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("no templates saved")
		return nil
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
