package main

import (
	"fmt"
	"path/filepath"

	"github.com/fbkclanna/phpclass/internal/config"
	"github.com/fbkclanna/phpclass/internal/git"
	"github.com/fbkclanna/phpclass/internal/logging"
	"github.com/fbkclanna/phpclass/internal/namespace"
	"github.com/fbkclanna/phpclass/internal/workspace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session bundles the settings shared by commands operating on one folder.
type session struct {
	root       string
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	resolver   *namespace.Resolver
}

// newSession determines the workspace root for folder, loads the config and
// applies flag overrides.
func newSession(cmd *cobra.Command, folder string) (*session, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := logging.New(cmd.ErrOrStderr(), verbose)

	root, err := workspaceRoot(cmd, folder, logger)
	if err != nil {
		return nil, err
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" && root != "" {
		configPath = config.Path(root)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("composer") {
		cfg.ComposerPath, _ = cmd.Flags().GetString("composer")
	}

	logger.Debug("session ready",
		zap.String("root", root),
		zap.String("config", configPath),
		zap.String("composer_path", cfg.ComposerPath))

	return &session{
		root:       root,
		configPath: configPath,
		cfg:        cfg,
		logger:     logger,
		resolver:   namespace.NewResolver(namespace.WithLogger(logger)),
	}, nil
}

// workspaceRoot returns --root when set, otherwise the git top level of
// folder. An empty result limits the manifest search to folder itself.
func workspaceRoot(cmd *cobra.Command, folder string, logger *zap.Logger) (string, error) {
	root, _ := cmd.Flags().GetString("root")
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("resolving workspace root: %w", err)
		}
		return abs, nil
	}
	if !git.IsGitInstalled() {
		return "", nil
	}
	top, err := git.TopLevel(folder)
	if err != nil {
		logger.Debug("no git top level, searching the folder only", zap.String("folder", folder), zap.Error(err))
		return "", nil
	}
	return top, nil
}

func (s *session) resolve(folder string) (*namespace.Result, error) {
	return s.resolver.Resolve(namespace.Request{
		Folder:   folder,
		Root:     s.root,
		Override: s.cfg.ComposerPath,
	})
}

func (s *session) load(folder string) (*workspace.Context, error) {
	return workspace.Load(folder, s.root, s.cfg.ComposerPath, workspace.OSProber{})
}
