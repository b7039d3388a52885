package scaffold

import (
	"path/filepath"
)

// Artifact pairs a target path with the write outcome reported for it.
type Artifact struct {
	Path    string
	Outcome Outcome
}

// Result summarizes one generation run: the resolved kind, the derived
// casings, and the outcome for each of the two artifacts.
type Result struct {
	Kind    Kind
	Casings Casings
	Impl    Artifact
	Test    Artifact
}

// CreatedCount returns how many artifacts this run actually wrote.
func (r *Result) CreatedCount() int {
	n := 0
	if r.Impl.Outcome == Created {
		n++
	}
	if r.Test.Outcome == Created {
		n++
	}
	return n
}

// Generate derives casings for rawName, renders the implementation/test pair
// for kind, and writes both files under rootDir. The kind is validated before
// any filesystem interaction. The two writes are independent: a skip on one
// does not prevent the other. Rerunning on the same inputs reports
// SkippedExisting for every file already present.
func Generate(kind, rawName, rootDir string) (*Result, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}

	c := DeriveCasings(rawName)

	implContent, err := RenderTemplate(k, c)
	if err != nil {
		return nil, err
	}
	testContent, err := RenderTestTemplate(k, c)
	if err != nil {
		return nil, err
	}

	implPath := filepath.Join(rootDir, "src", k.subDir(), c.Kebab+".ts")
	testPath := filepath.Join(rootDir, "tests", k.subDir(), c.Kebab+".test.ts")

	implOutcome, err := WriteArtifact(implPath, implContent)
	if err != nil {
		return nil, err
	}

	testOutcome, err := WriteArtifact(testPath, testContent)
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:    k,
		Casings: c,
		Impl:    Artifact{Path: implPath, Outcome: implOutcome},
		Test:    Artifact{Path: testPath, Outcome: testOutcome},
	}, nil
}
