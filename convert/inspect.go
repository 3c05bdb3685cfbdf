package convert

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"figc/config"
	"figc/figma"
	"figc/state"
)

// Inspect is the inspect subcommand action. It renders the fetched document
// tree with geometry, radius and paint annotations - the converter never
// limits its own traversal, so limits live here.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	fileKey := cmd.Args().Get(0)
	if len(fileKey) == 0 {
		return errors.New("no file key has been specified")
	}

	env.Token = config.SecretString(cmd.String("api-key"))
	if len(env.Token) == 0 {
		return errors.New("Figma API key required, set FIGMA_API_KEY environment variable or use --api-key")
	}

	client := figma.NewClient(env.Cfg.Figma.BaseURL, env.Token.Reveal(), env.Cfg.Figma.Timeout(), env.Rpt, log.Named("figma"))

	file, err := client.GetFile(ctx, fileKey)
	if err != nil {
		return err
	}

	root := &file.Document
	if name := cmd.String("frame"); len(name) > 0 {
		frames := figma.FindFrames(root)
		if root = figma.FrameByName(frames, name); root == nil {
			log.Error("Frame not found, listing available frames", zap.String("frame", name), zap.Strings("available", figma.FrameNames(frames)))
			return fmt.Errorf("frame %q not found", name)
		}
	}

	log.Info("Document structure", zap.String("file", file.Name))

	tree := figma.RenderTree(root, int(cmd.Int("depth")), int(cmd.Int("children")))
	if _, err := os.Stdout.WriteString(tree); err != nil {
		return fmt.Errorf("unable to write tree: %w", err)
	}
	return nil
}
