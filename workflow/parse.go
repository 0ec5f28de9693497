// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package workflow

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SV592/repro-build/log"
)

// SetupRuntimeMarker identifies the workflow action that provisions the
// runtime whose version we want to reproduce.
const SetupRuntimeMarker = "actions/setup-node"

// versionKey is the `with` attribute carrying the runtime version.
const versionKey = "node-version"

// Parse reads one workflow file and extracts its jobs in document order.
// A file whose top level is not a mapping, or which has no jobs mapping,
// contributes nothing.  A file that fails to parse is logged and likewise
// contributes nothing; it never aborts the surrounding run.
func Parse(ctx context.Context, file File) []Job {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		log.G(ctx).WithField("file", file.Path).Errorf("could not read workflow: %v", err)
		return nil
	}

	return extract(ctx, file.Path, data)
}

func extract(ctx context.Context, path string, data []byte) []Job {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.G(ctx).WithField("file", path).Errorf("could not parse workflow: %v", err)
		return nil
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}

	jobsNode := mappingValue(root, "jobs")
	if jobsNode == nil || jobsNode.Kind != yaml.MappingNode {
		return nil
	}

	source := filepath.Base(path)

	var (
		jobs  []Job
		index = map[string]int{}
	)

	for i := 0; i+1 < len(jobsNode.Content); i += 2 {
		nameNode := jobsNode.Content[i]
		jobNode := jobsNode.Content[i+1]

		job := extractJob(ctx, source, nameNode.Value, jobNode)
		if len(job.Steps) == 0 && job.RuntimeVersion == "" {
			continue
		}

		// Duplicate keys within one file: last write wins, keeping the
		// position of the first occurrence.
		if at, ok := index[job.Name]; ok {
			jobs[at] = job
			continue
		}

		index[job.Name] = len(jobs)
		jobs = append(jobs, job)
	}

	return jobs
}

func extractJob(ctx context.Context, source, name string, node *yaml.Node) Job {
	job := Job{Name: name, Source: source}

	if node.Kind != yaml.MappingNode {
		return job
	}

	steps := mappingValue(node, "steps")
	if steps == nil || steps.Kind != yaml.SequenceNode {
		return job
	}

	for _, step := range steps.Content {
		if step.Kind != yaml.MappingNode {
			continue
		}

		if run := mappingValue(step, "run"); run != nil && run.Kind == yaml.ScalarNode {
			job.Steps = append(job.Steps, run.Value)
		}

		uses := mappingValue(step, "uses")
		if uses == nil || uses.Kind != yaml.ScalarNode || !strings.Contains(uses.Value, SetupRuntimeMarker) {
			continue
		}

		with := mappingValue(step, "with")
		if with == nil || with.Kind != yaml.MappingNode {
			continue
		}

		raw := mappingValue(with, versionKey)
		if raw == nil || raw.Kind != yaml.ScalarNode {
			continue
		}

		// First occurrence wins; later setup steps never overwrite it.
		if job.RuntimeVersion != "" {
			continue
		}

		job.RuntimeVersion = NormalizeVersion(raw.Value)
		if job.RuntimeVersion != "" {
			log.G(ctx).
				WithField("job", name).
				WithField("file", source).
				Infof("detected runtime version %q", job.RuntimeVersion)
		}
	}

	return job
}

// mappingValue returns the value node of key within a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}
