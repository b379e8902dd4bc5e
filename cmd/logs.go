package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hpcloud/tail"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/seshconnect/cli"
	"github.com/grovetools/seshconnect/config"
	"github.com/grovetools/seshconnect/logging"
	"github.com/grovetools/seshconnect/pkg/paths"
	"github.com/grovetools/seshconnect/tui/theme"
	"github.com/grovetools/seshconnect/util/pathutil"
)

const defaultLogComponent = "seshconnect"

func newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs [component]",
		Short: "Show the seshconnect log file",
		Long: `Prints the newest log file written by a component (default: seshconnect).
Logs are only written when logging.file.enabled is set in the preferences.

Examples:
  # follow the log while reproducing a problem
  seshconnect logs -f

  # the last 50 lines as JSON Lines
  seshconnect logs --tail 50 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLogsE,
	}

	cmd.Flags().BoolP("follow", "f", false, "Follow log output")
	cmd.Flags().Int("tail", -1, "Number of lines to show from the end of the log (default: all)")
	return cmd
}

func runLogsE(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)
	logger := cli.GetLogger(cmd, "logs")

	prefs, err := cli.LoadPreferences(opts, logger)
	if err != nil {
		return err
	}
	theme.UsePreferences(prefs)

	component := defaultLogComponent
	if len(args) == 1 {
		component = args[0]
	}

	path, err := logFileFor(prefs, component)
	if err != nil {
		return err
	}
	follow, _ := cmd.Flags().GetBool("follow")
	tailLines, _ := cmd.Flags().GetInt("tail")
	logger.WithFields(logrus.Fields{
		"log_file": path,
		"follow":   follow,
	}).Debug("Reading log file")

	printer := &logPrinter{out: cmd.OutOrStdout(), json: opts.JSONOutput}
	return streamLog(commandContext(cmd), path, follow, tailLines, printer.print)
}

// logFileFor returns the configured log file, or the newest
// <component>-<date>.log in the log directory.
func logFileFor(prefs *config.Preferences, component string) (string, error) {
	var logCfg logging.Config
	if err := prefs.UnmarshalExtension("logging", &logCfg); err != nil {
		return "", err
	}
	if logCfg.File.Path != "" {
		return pathutil.Expand(logCfg.File.Path), nil
	}

	dir := paths.LogDir()
	if dir == "" {
		return "", fmt.Errorf("could not determine the log directory")
	}
	return findLatestLogFile(dir, component+"-")
}

// findLatestLogFile picks the most recently modified file in dir whose name
// starts with prefix, preferring files with content.
func findLatestLogFile(dir, prefix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("could not read log directory %s: %w", dir, err)
	}

	var latest, latestNonEmpty os.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == nil || info.ModTime().After(latest.ModTime()) {
			latest = info
		}
		if info.Size() > 0 && (latestNonEmpty == nil || info.ModTime().After(latestNonEmpty.ModTime())) {
			latestNonEmpty = info
		}
	}

	switch {
	case latestNonEmpty != nil:
		return filepath.Join(dir, latestNonEmpty.Name()), nil
	case latest != nil:
		return filepath.Join(dir, latest.Name()), nil
	default:
		return "", fmt.Errorf("no %s*.log files found in %s", prefix, dir)
	}
}

// streamLog emits the last tailLines lines of path (all of them when
// negative), then keeps emitting appended lines until ctx is done when
// follow is set. Rotation and truncation are handled by the tailer.
func streamLog(ctx context.Context, path string, follow bool, tailLines int, emit func(string)) error {
	backlog, offset, err := readBacklog(path, tailLines)
	if err != nil {
		return err
	}
	for _, line := range backlog {
		emit(line)
	}
	if !follow {
		return nil
	}

	t, err := tail.TailFile(path, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Location: &tail.SeekInfo{Offset: offset, Whence: io.SeekStart},
		Logger:   tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to follow %s: %w", path, err)
	}
	defer t.Cleanup()
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return t.Err()
			}
			if line.Err != nil {
				return line.Err
			}
			if line.Text != "" {
				emit(line.Text)
			}
		}
	}
}

// readBacklog reads path to its current end and returns the lines to show
// along with the byte offset following starts from.
func readBacklog(path string, tailLines int) ([]string, int64, error) {
	t, err := tail.TailFile(path, tail.Config{
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer t.Cleanup()

	var lines []string
	var offset int64
	for line := range t.Lines {
		if line.Err != nil {
			return nil, 0, line.Err
		}
		offset += int64(len(line.Text)) + 1
		if line.Text == "" {
			continue
		}
		lines = append(lines, line.Text)
		if tailLines >= 0 && len(lines) > tailLines {
			lines = lines[1:]
		}
	}
	return lines, offset, nil
}

type logPrinter struct {
	out  io.Writer
	json bool
}

func (p *logPrinter) print(line string) {
	var fields map[string]interface{}
	parsed := json.Unmarshal([]byte(line), &fields) == nil

	if p.json {
		if !parsed {
			fields = map[string]interface{}{"raw_line": line}
		}
		data, _ := json.Marshal(fields)
		fmt.Fprintln(p.out, string(data))
		return
	}

	if !parsed {
		// Text formatter output is already human readable
		fmt.Fprintln(p.out, line)
		return
	}
	fmt.Fprintln(p.out, formatLogFields(fields))
}

// formatLogFields renders a JSON log entry the way the text formatter would.
func formatLogFields(fields map[string]interface{}) string {
	t := theme.DefaultTheme

	ts, _ := fields["time"].(string)
	level, _ := fields["level"].(string)
	msg, _ := fields["msg"].(string)
	component, _ := fields["component"].(string)

	parsedTime, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		parsedTime, _ = time.Parse(time.RFC3339, ts)
	}

	var levelStyle lipgloss.Style
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		levelStyle = t.Error
	case "warning":
		levelStyle = t.Warning
	case "info":
		levelStyle = t.Info
	default:
		levelStyle = t.Muted
	}

	var keys []string
	for k := range fields {
		switch k {
		case "time", "level", "msg", "component":
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := []string{
		parsedTime.Format("15:04:05"),
		levelStyle.Render(strings.ToUpper(level)),
		msg,
	}
	if component != "" {
		parts = append(parts, t.Muted.Render("["+component+"]"))
	}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", t.Muted.Render(k), fields[k]))
	}
	return strings.Join(parts, " ")
}
