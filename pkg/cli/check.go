package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/platinummonkey/protopojo/pkg/config"
	"github.com/platinummonkey/protopojo/pkg/proto"
	"github.com/platinummonkey/protopojo/pkg/schema"
)

func newCheckCommand() *Command {
	cmd := &Command{
		Name:        "check",
		Description: "Parse proto files and report syntax errors",
		Flags:       flag.NewFlagSet("check", flag.ExitOnError),
		Run:         runCheck,
	}

	cmd.Flags.String("config", "", "Path to a protopojo.yaml manifest")
	cmd.Flags.String("dir", "", "Directory containing proto files (overrides manifest)")

	return cmd
}

func runCheck(args []string) error {
	flags := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := flags.String("config", "", "Path to a protopojo.yaml manifest")
	dir := flags.String("dir", "", "Directory containing proto files (overrides manifest)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dir != "" {
		cfg.SourceDirs = []string{*dir}
	}

	files := flags.Args()
	if len(files) == 0 {
		files, err = findProtoFiles(cfg.SourceDirs)
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no proto files found in %s", strings.Join(cfg.SourceDirs, ", "))
	}

	failures := 0
	for _, path := range files {
		file, err := proto.ParseFile(path)
		if err != nil {
			failures++
			fmt.Println(err)
			continue
		}
		s := schema.Build(file)
		fmt.Printf("%s: ok (%d types)\n", path, len(s.Types))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, len(files))
	}
	fmt.Println("All proto files are valid")
	return nil
}
