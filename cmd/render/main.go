package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"podlauncher/internal/catalog"
	"podlauncher/internal/config"
	"podlauncher/internal/model"
	"podlauncher/internal/service"
	"podlauncher/internal/session"
)

type renderFlags struct {
	profilePath string
	output      string
	gaspard     string
	email       string
	uid         int
	gid         int
	image       string
	gpus        float64
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render launch.yaml without the web form",
		Long: `Render launch.yaml and the companion shell commands from the command line.

Identity values are remembered in a profile file, the same way the web form
remembers them in cookies: flags that are given override the stored values, and
the resulting profile is written back whether or not it is valid.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, stdout, stderr)
		},
	}

	defaultProfile := ""
	if dir, err := os.UserConfigDir(); err == nil {
		defaultProfile = filepath.Join(dir, "podlauncher", "profile.json")
	}

	f := cmd.Flags()
	f.StringVar(&flags.profilePath, "profile", defaultProfile, "file the profile is remembered in")
	f.StringVarP(&flags.output, "output", "o", "", "write the manifest to this file instead of stdout")
	f.StringVar(&flags.gaspard, "gaspard", "", "Gaspard username")
	f.StringVar(&flags.email, "email", "", "EPFL email")
	f.IntVar(&flags.uid, "uid", 0, "UID")
	f.IntVar(&flags.gid, "gid", 0, "GID")
	f.StringVar(&flags.image, "image", "", "Docker image (defaults to the first catalog entry)")
	f.Float64Var(&flags.gpus, "gpus", model.DefaultNumGPU, "number of GPUs")
	return cmd
}

func run(cmd *cobra.Command, flags *renderFlags, stdout, stderr io.Writer) error {
	cfg := config.Load()

	images, err := catalog.Load(cfg.ImageCatalogFile)
	if err != nil {
		return err
	}
	svc := service.NewLaunchService(images, service.Options{
		FSGroup:      cfg.FSGroup,
		NotebookPort: cfg.NotebookPort,
		AdminDataURL: cfg.AdminDataURL,
	})

	store, err := loadProfileFile(flags.profilePath)
	if err != nil {
		return err
	}
	profile := session.LoadProfile(store, nil)

	changed := cmd.Flags().Changed
	if changed("gaspard") {
		profile.Gaspard = flags.gaspard
	}
	if changed("email") {
		profile.Email = flags.email
	}
	if changed("uid") {
		profile.UID = flags.uid
	}
	if changed("gid") {
		profile.GID = flags.gid
	}

	req := svc.Prepare(model.LaunchRequest{
		Profile: profile,
		MachineSetup: model.MachineSetup{
			DockerImage: flags.image,
			NumGPU:      int(flags.gpus),
		},
	})

	session.SaveProfile(store, req.Profile, cfg.CookieTTL, time.Now())
	if err := saveProfileFile(flags.profilePath, store); err != nil {
		log.Printf("warning: %v", err)
	}

	plan, err := svc.Generate(req)
	if err != nil {
		if link := svc.AdminDataURL(req.EmailPrefix()); link != "" {
			fmt.Fprintf(stderr, "Your UID and GID are listed at %s\n", link)
		}
		fmt.Fprintln(stderr, err)
		return err
	}

	out := stdout
	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(plan.Manifest), 0o644); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		out = io.Discard
	}
	fmt.Fprint(out, plan.Manifest)

	c := plan.Commands
	fmt.Fprintf(stderr, "Launch the machine:\n  %s\n", c.Apply)
	fmt.Fprintf(stderr, "Check the status of the pod with:\n  %s\n", c.ListPods)
	fmt.Fprintf(stderr, "Enter the pod with:\n  %s\n", c.Exec)
	fmt.Fprintf(stderr, "Forward the notebook port with:\n  %s\nand open %s\n", c.PortForward, c.NotebookURL)
	return nil
}

func loadProfileFile(path string) (session.MemoryStore, error) {
	store := session.MemoryStore{}
	if path == "" {
		return store, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return store, nil
}

func saveProfileFile(path string, store session.MemoryStore) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
