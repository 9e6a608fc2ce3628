package scaffold

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// ManifestName is the file name of the manifest inside the output directory.
const ManifestName = "manifest.hcl"

// Manifest records what was generated.
type Manifest struct {
	Project string `hcl:"project"`
	// Actors lists every actor of the project in input order, failed ones included.
	Actors []string `hcl:"actors"`
	// Failed lists the actors that could not be generated.
	Failed []string        `hcl:"failed"`
	Files  []ManifestActor `hcl:"actor,block"`
}

// ManifestActor describes one generated file.
type ManifestActor struct {
	Name        string `hcl:"name,label"`
	File        string `hcl:"file"`
	Stage       bool   `hcl:"stage"`
	Scripts     int    `hcl:"scripts"`
	Diagnostics int    `hcl:"diagnostics"`
}

// Bytes renders the manifest as HCL.
func (m *Manifest) Bytes() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(m, f.Body())
	return hclwrite.Format(f.Bytes())
}

// ReadManifest parses a manifest written by Write.
func ReadManifest(path string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}
	var m Manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}
	return &m, nil
}
