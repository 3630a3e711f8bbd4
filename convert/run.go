package convert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Shane32/BookConverter/config"
	"github.com/Shane32/BookConverter/content"
	"github.com/Shane32/BookConverter/extract"
	"github.com/Shane32/BookConverter/plan"
	"github.com/Shane32/BookConverter/state"
)

// RunConvert is a cli action for the "convert" command. It drives the full
// pipeline from an HTML source to a print-ready document.
func RunConvert(ctx context.Context, cmd *cli.Command) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")
	env.Overwrite = cmd.Bool("overwrite")

	src, dst, err := resolvePaths(cmd, ".docx", env)
	if err != nil {
		return err
	}

	log.Info("Conversion starting", zap.String("from", src), zap.String("to", dst))
	defer func(start time.Time) {
		log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	model, idx, err := extractSource(src, env, log)
	if err != nil {
		return err
	}
	// broken cross-references must fail before any output is produced
	if err := idx.Validate(model); err != nil {
		return err
	}

	if err := prepareOutput(dst, env, log); err != nil {
		return err
	}

	sections := plan.Build(model, &env.Cfg.Document, log)
	if err := Render(model, sections, &env.Cfg.Document, dst, log); err != nil {
		return err
	}

	if env.Rpt != nil {
		env.Rpt.Store("result"+filepath.Ext(dst), dst)
	}
	return nil
}

// RunExtract is a cli action for the "extract" command. It stops the
// pipeline at the intermediate model and writes it out as JSON.
func RunExtract(ctx context.Context, cmd *cli.Command) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("extract")
	env.Overwrite = cmd.Bool("overwrite")

	src, dst, err := resolvePaths(cmd, ".json", env)
	if err != nil {
		return err
	}

	log.Info("Extraction starting", zap.String("from", src), zap.String("to", dst))
	defer func(start time.Time) {
		log.Info("Extraction completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	model, idx, err := extractSource(src, env, log)
	if err != nil {
		return err
	}
	if err := idx.Validate(model); err != nil {
		return err
	}

	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize model: %w", err)
	}

	if err := prepareOutput(dst, env, log); err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}

	if env.Rpt != nil {
		env.Rpt.Store("result"+filepath.Ext(dst), dst)
	}
	return nil
}

// RunRender is a cli action for the "render" command. It resumes the
// pipeline from a previously extracted JSON model.
func RunRender(ctx context.Context, cmd *cli.Command) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")
	env.Overwrite = cmd.Bool("overwrite")

	src, dst, err := resolvePaths(cmd, ".docx", env)
	if err != nil {
		return err
	}

	log.Info("Rendering starting", zap.String("from", src), zap.String("to", dst))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read input source: %w", err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("source"+filepath.Ext(src), data)
	}

	model, err := content.Unmarshal(data)
	if err != nil {
		return err
	}

	if err := prepareOutput(dst, env, log); err != nil {
		return err
	}

	sections := plan.Build(model, &env.Cfg.Document, log)
	if err := Render(model, sections, &env.Cfg.Document, dst, log); err != nil {
		return err
	}

	if env.Rpt != nil {
		env.Rpt.Store("result"+filepath.Ext(dst), dst)
	}
	return nil
}

// resolvePaths reads the source and optional destination arguments, making
// both absolute. A missing destination is derived from the source name next
// to the current directory.
func resolvePaths(cmd *cli.Command, ext string, env *state.LocalEnv) (string, string, error) {

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return "", "", errors.New("no input source has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return "", "", fmt.Errorf("unable to resolve input source: %w", err)
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = buildDefaultFileName(src, ext, env)
	} else if filepath.Ext(dst) == "" {
		// destination without extension is treated as a directory
		dst = filepath.Join(dst, buildDefaultFileName(src, ext, env))
	}
	dst, err = filepath.Abs(dst)
	if err != nil {
		return "", "", fmt.Errorf("unable to resolve output destination: %w", err)
	}
	return src, dst, nil
}

func buildDefaultFileName(src, ext string, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if env.Cfg.Document.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}
	return config.CleanFileName(baseName) + ext
}

// prepareOutput makes sure the destination is writable under the overwrite
// policy and that its directory exists.
func prepareOutput(dst string, env *state.LocalEnv, log *zap.Logger) error {

	if _, err := os.Stat(dst); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Debug("Overwriting existing file", zap.String("file", dst))
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("unable to examine output destination: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

// extractSource opens the HTML source and runs extraction, keeping a copy of
// the source in the debug report.
func extractSource(path string, env *state.LocalEnv, log *zap.Logger) (*content.Model, *extract.SourceIndex, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open input source: %w", err)
	}
	defer f.Close()

	if env.Rpt != nil {
		env.Rpt.Store("source"+filepath.Ext(path), path)
	}
	return extract.Extract(f, &env.Cfg.Document, log)
}
