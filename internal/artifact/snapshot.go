package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/mesh-intelligence/journal/internal/jconfig"
	"github.com/mesh-intelligence/journal/internal/journalerr"
	"github.com/mesh-intelligence/journal/internal/lockfile"
	"github.com/mesh-intelligence/journal/pkg/journal"
)

const versionProbeTimeout = 5 * time.Second

// notAvailable is the literal value recorded when a version-probe command
// fails or times out.
const notAvailable = "not available"

// StateSnapshot gathers the requested components into a single JSON
// document and writes it to {snapshots}/{timestamp}_{name-slug}.json.
func (m *Manager) StateSnapshot(
	project *jconfig.Project,
	projectRoot string,
	name string,
	includeConfigs, includeEnv, includeVersions, includeBuildDirListing bool,
	buildDir string,
	extraVersions map[string]string,
) (*journal.Snapshot, error) {
	if includeBuildDirListing && buildDir == "" {
		return nil, journalerr.New(journalerr.KindInvalidArgument, "build_dir is required when include_build_dir_listing is set")
	}

	snap := &journal.Snapshot{
		Name:      name,
		Timestamp: m.Clock.Now(),
	}

	if includeConfigs {
		configs, err := gatherConfigs(projectRoot, project.ConfigPatterns)
		if err != nil {
			return nil, err
		}
		snap.Configs = configs
	}
	if includeEnv {
		snap.Environment = gatherEnvironment(project.EnvIncludePatterns, project.EnvExcludePatterns)
	}
	if includeVersions {
		snap.Versions = gatherVersions(project.VersionCommands)
		for name, value := range extraVersions {
			snap.Versions[name] = value
		}
	}
	if includeBuildDirListing {
		listing, err := listBuildDir(buildDir)
		if err != nil {
			return nil, err
		}
		snap.BuildDirListing = listing
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "marshal snapshot", err)
	}

	filename := fmt.Sprintf("%s_%s.json", filenameTimestamp(snap.Timestamp), slugify(name))
	path := filepath.Join(m.SnapshotsDir, filename)
	if err := lockfile.AtomicReplace(path, data); err != nil {
		return nil, err
	}

	if err := m.appendSnapshotIndex(path, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func gatherConfigs(root string, patterns []string) (map[string]string, error) {
	result := map[string]string{}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, journalerr.Wrap(journalerr.KindInvalidArgument, "invalid config glob pattern", err)
		}
		for _, m := range matches {
			data, err := os.ReadFile(m)
			if err != nil {
				continue
			}
			rel, err := filepath.Rel(root, m)
			if err != nil {
				rel = m
			}
			result[rel] = string(data)
		}
	}
	return result, nil
}

func gatherEnvironment(include, exclude []string) map[string]string {
	includeRe := compileAll(include)
	excludeRe := compileAll(exclude)

	result := map[string]string{}
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		name, value := parts[0], parts[1]

		if len(includeRe) > 0 && !matchesAny(includeRe, name) {
			continue
		}
		if matchesAny(excludeRe, name) {
			continue
		}
		result[name] = value
	}
	return result
}

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if re, err := regexp.Compile(p); err == nil {
			out = append(out, re)
		}
	}
	return out
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func gatherVersions(commands []jconfig.VersionCommand) map[string]string {
	result := make(map[string]string, len(commands))
	for _, vc := range commands {
		result[vc.Name] = probeVersion(vc)
	}
	return result
}

func probeVersion(vc jconfig.VersionCommand) string {
	ctx, cancel := context.WithTimeout(context.Background(), versionProbeTimeout)
	defer cancel()

	fields := strings.Fields(vc.Command)
	if len(fields) == 0 {
		return notAvailable
	}
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	out, err := cmd.Output()
	if err != nil {
		return notAvailable
	}

	output := strings.TrimSpace(string(out))
	if vc.CaptureRegex == "" {
		return output
	}
	re, err := regexp.Compile(vc.CaptureRegex)
	if err != nil {
		return output
	}
	match := re.FindStringSubmatch(output)
	if len(match) < 2 {
		return notAvailable
	}
	return match[1]
}

func listBuildDir(buildDir string) ([]string, error) {
	var listing []string
	err := filepath.WalkDir(buildDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == buildDir {
			return nil
		}
		rel, relErr := filepath.Rel(buildDir, path)
		if relErr != nil {
			rel = path
		}
		listing = append(listing, rel)
		return nil
	})
	if err != nil {
		return nil, journalerr.Wrap(journalerr.KindIoFailure, "list build directory", err)
	}
	return listing, nil
}
