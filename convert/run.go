// Package convert implements the convert and inspect subcommands: fetching a
// document, selecting a frame and driving the html engine.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"figc/config"
	"figc/convert/html"
	"figc/figma"
	"figc/state"
)

// Run is the convert subcommand action.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	fileKey := cmd.Args().Get(0)
	if len(fileKey) == 0 {
		return errors.New("no file key has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, extra arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	env.Token = config.SecretString(cmd.String("api-key"))
	if len(env.Token) == 0 {
		return errors.New("Figma API key required, set FIGMA_API_KEY environment variable or use --api-key")
	}

	frame, file, client, err := fetchAndSelectFrame(ctx, env, fileKey, cmd.String("frame"), log)
	if err != nil {
		return err
	}

	imageIDs := figma.CollectImageNodes(frame)
	images := map[string]string{}
	if len(imageIDs) > 0 {
		log.Info("Fetching image fills", zap.Int("count", len(imageIDs)))
		if images, err = client.GetImageFills(ctx, fileKey, imageIDs); err != nil {
			return err
		}
	}

	gen := html.New(images, html.Options{
		Placeholder:  env.Cfg.Document.PlaceholderFill,
		FallbackFont: env.Cfg.Document.FallbackFont,
	}, log)

	out, err := gen.Generate(frame)
	if err != nil {
		return err
	}

	dst := buildOutputPath(cmd.String("output"), frame.Name, env)

	log.Info("Processing starting", zap.String("file", file.Name), zap.String("frame", frame.Name), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	if err := os.WriteFile(dst, []byte(out), 0644); err != nil {
		return fmt.Errorf("unable to write output file '%s': %w", dst, err)
	}

	log.Info("Output written", zap.String("file", dst), zap.Strings("fonts", gen.FontsUsed()))
	return nil
}

// fetchAndSelectFrame downloads the document and picks a frame: the named one
// when requested (config default or flag), the first discovered otherwise.
func fetchAndSelectFrame(ctx context.Context, env *state.LocalEnv, fileKey, frameName string, log *zap.Logger) (*figma.Node, *figma.File, *figma.Client, error) {
	client := figma.NewClient(env.Cfg.Figma.BaseURL, env.Token.Reveal(), env.Cfg.Figma.Timeout(), env.Rpt, log.Named("figma"))

	file, err := client.GetFile(ctx, fileKey)
	if err != nil {
		return nil, nil, nil, err
	}

	frames := figma.FindFrames(&file.Document)
	if len(frames) == 0 {
		return nil, nil, nil, errors.New("no frames found in the Figma file")
	}

	if len(frameName) == 0 {
		frameName = env.Cfg.Document.DefaultFrame
	}

	if len(frameName) > 0 {
		frame := figma.FrameByName(frames, frameName)
		if frame == nil {
			// the user must see what is actually there before we fail
			log.Error("Frame not found, listing available frames", zap.String("frame", frameName), zap.Strings("available", figma.FrameNames(frames)))
			return nil, nil, nil, fmt.Errorf("frame %q not found", frameName)
		}
		return frame, file, client, nil
	}

	log.Info("Using first discovered frame", zap.String("name", frames[0].Name))
	return frames[0], file, client, nil
}
