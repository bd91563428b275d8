package cmd

import (
	"errors"
	"fmt"
	"io"

	"my-tweet-reviewer/config"
	"my-tweet-reviewer/pkg/browser"
	"my-tweet-reviewer/pkg/importer"
	"my-tweet-reviewer/pkg/prompt"
	"my-tweet-reviewer/pkg/service"
	"my-tweet-reviewer/pkg/store"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configFilePath   string
	username         string
	excludedHashtags []string
	savedFilename    string
	exportPath       string
	guiCompatibility bool
	logLevel         string

	// replaced in tests
	launcher browser.Launcher
}

func (o *rootOptions) addFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVarP(&o.configFilePath, "config", "c", "./etc/config.yaml", "config file path")
	f.StringVarP(&o.username, "username", "u", "", "Twitter username used to build tweet URLs, e.g. @yourusername")
	f.StringSliceVarP(&o.excludedHashtags, "exclude", "e", nil, "hashtags whose tweets are left out of the review (without the '#')")
	f.StringVarP(&o.savedFilename, "save-file", "s", "", "CSV file the review progress is saved to")
	f.StringVar(&o.exportPath, "tweet-js", "", "tweet.js file from the Twitter archive")
	f.BoolVar(&o.guiCompatibility, "gui-compatibility", false, "strip non-ASCII characters and add the tweet_deleted column")
	f.StringVar(&o.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

// loadConfig reads the config file and applies the flags given on the command
// line on top of it.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.GlobalConfig, error) {
	flags := cmd.Flags()
	cfg, err := config.Load(o.configFilePath, flags.Changed("config"))
	if err != nil {
		return nil, err
	}
	if flags.Changed("username") {
		cfg.Reviewer.Username = o.username
	}
	if flags.Changed("exclude") {
		if err := cfg.Reviewer.SetExcludedHashtags(o.excludedHashtags); err != nil {
			return nil, err
		}
	}
	if flags.Changed("save-file") {
		cfg.Reviewer.SavedFilename = o.savedFilename
	}
	if flags.Changed("tweet-js") {
		cfg.Reviewer.ExportPath = o.exportPath
	}
	if flags.Changed("gui-compatibility") {
		cfg.Reviewer.GUICompatibility = o.guiCompatibility
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, pkgerrors.Errorf("invalid configuration: %s", errors.Join(errs...))
	}
	zap.S().Debugf("reviewer config: %+v", *cfg.Reviewer)
	return cfg, nil
}

func (o *rootOptions) browserLauncher() browser.Launcher {
	if o.launcher != nil {
		return o.launcher
	}
	return browser.NewSystem()
}

// loadStore loads the review file, or builds it from tweet.js. It returns nil
// without an error when there is no tweet data to work on.
func loadStore(cfg *config.ReviewerConfig, out io.Writer) (*store.Store, error) {
	imp := importer.NewTweetJSImporter(cfg.ExportPath, cfg.GUICompatibility)
	s, err := service.NewLoader(cfg, imp, out).LoadOrCreate()
	if errors.Is(err, importer.ErrExportMissing) {
		return nil, pkgerrors.Errorf("the file %s is not present. Please address this and restart the program", cfg.ExportPath)
	}
	if err != nil {
		return nil, err
	}
	if s.Len() == 0 {
		fmt.Fprintf(out, "\nThere is no tweet data in %[1]s. Ensure an up to date %[2]s is present "+
			"and remove the empty %[1]s to start again.\n", cfg.SavedFilename, cfg.ExportPath)
		return nil, nil
	}
	return s, nil
}

// workflow is one of the session operations.
type workflow func(*service.Session) (service.Result, error)

func runWorkflow(cmd *cobra.Command, o *rootOptions, console prompt.Prompter, run workflow) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	s, err := loadStore(cfg.Reviewer, out)
	if err != nil || s == nil {
		return err
	}
	res, err := run(service.NewSession(s, console, o.browserLauncher(), out))
	if errors.Is(err, prompt.ErrNoInput) {
		fmt.Fprintln(out, "\nInput closed, nothing saved.")
		return nil
	}
	if err != nil {
		return err
	}
	zap.S().Debugf("workflow result: %+v", res)
	return nil
}
