package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lblanes25/datasplitter/config"
	"github.com/lblanes25/datasplitter/core"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		slog.Error("Split failed", "error", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, output io.Writer, args []string) error {
	flags := flag.NewFlagSet("datasplitter", flag.ContinueOnError)
	flags.SetOutput(output)

	var input, outputDir string
	flags.StringVar(&input, "i", "", "Path to the source workbook (.xlsx)")
	flags.StringVar(&input, "input", "", "Path to the source workbook (.xlsx)")
	flags.StringVar(&outputDir, "o", "", "Directory for generated workbooks (defaults to the source directory)")
	flags.StringVar(&outputDir, "output", "", "Directory for generated workbooks (defaults to the source directory)")
	var settingsFile string
	flags.StringVar(&settingsFile, "c", "", "Path to a YAML settings file (optional)")
	flags.StringVar(&settingsFile, "config", "", "Path to a YAML settings file (optional)")
	presort := flags.Bool("presort", true, "Sort the workbook once and filter by bulk deletion")
	s3Bucket := flags.String("s3-bucket", "", "S3 bucket name for uploading generated workbooks")
	s3Prefix := flags.String("s3-prefix", "datasplitter-output", "S3 prefix (folder) for uploaded files")
	verbose := flags.Bool("v", false, "Enable debug logging")

	if err := flags.Parse(args); err != nil {
		return err
	}

	// Initialize structured logger
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// 1. Load Settings
	var settings *config.Settings
	if settingsFile != "" {
		logger.Info("Loading settings", "file", settingsFile)
		loaded, err := config.LoadSettings(settingsFile)
		if err != nil {
			return err
		}
		settings = loaded
	} else {
		settings = config.DefaultSettings()
	}
	if flagWasSet(flags, "presort") {
		settings.Presort = presort
	}
	if *s3Bucket != "" {
		settings.S3.Bucket = *s3Bucket
		settings.S3.Prefix = *s3Prefix
	}

	// 2. Resolve input/output, prompting when flags are omitted
	reader := bufio.NewReader(stdin)
	if input == "" {
		input = settings.Input
	}
	if input == "" {
		input = prompt(reader, output, "Source workbook path: ")
	}
	if input == "" {
		return fmt.Errorf("no input file given")
	}
	if outputDir == "" {
		outputDir = settings.OutputDir
	}
	if outputDir == "" {
		outputDir = prompt(reader, output, "Output directory (blank for source directory): ")
	}

	// 3. Split
	logger.Info("Splitting workbook", "input", input, "output", outputDir)
	splitter := core.NewSplitter(settings, logger)
	summary, err := splitter.Split(input, outputDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Generated %d of %d workbooks\n", summary.Succeeded, summary.Attempted)
	for leader, path := range summary.Outputs {
		fmt.Fprintf(output, "  %s: %s\n", leader, path)
	}

	// 4. Upload to S3 if configured
	if settings.S3.Bucket != "" && summary.Succeeded > 0 {
		logger.Info("Starting S3 upload", "bucket", settings.S3.Bucket, "prefix", settings.S3.Prefix)
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
		if err != nil {
			return fmt.Errorf("unable to load AWS SDK config: %w", err)
		}
		uploader := core.NewS3Uploader(cfg, settings.S3.Bucket, settings.S3.Prefix, logger)
		if err := uploader.UploadOutputs(context.TODO(), summary); err != nil {
			return fmt.Errorf("failed to upload outputs to s3: %w", err)
		}
		logger.Info("Successfully uploaded to S3")
	}

	return nil
}

func flagWasSet(flags *flag.FlagSet, name string) bool {
	set := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func prompt(reader *bufio.Reader, output io.Writer, message string) string {
	fmt.Fprint(output, message)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
