package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bashSetup = "bash setup"
	bashRun   = "bash run"
	bashCheck = "bash check"
)

// TestTopics keeps the documentation in sync with itself: every topic
// listed in readme.md loads, and every topic file is listed.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, name := range listed {
		t.Run("load_"+name, func(t *testing.T) {
			if _, err := Topic(name); err != nil {
				t.Errorf("failed to get topic %q: %v", name, err)
			}
		})
	}

	all, err := All()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range all {
		found := false
		for _, l := range listed {
			if l == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

// TestCodeBlocks runs the executable scenarios embedded in the
// documentation against a freshly built mbk binary.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, file)
		})
	}
}

// HELPER

// block is a fenced code block in a markdown file.
type block struct {
	Type    string
	Content string
	File    string
	Line    int
}

// buildMbk builds the mbk executable into tmp and returns its path.
func buildMbk(t *testing.T, tmp string) string {
	t.Helper()

	output := filepath.Join(tmp, "mbk")
	if err := exec.Command("go", "build", "-o", output, "../mbk/").Run(); err != nil {
		t.Fatalf("failed to build mbk command: %v", err)
	}
	return output
}

// parseMarkdown returns the executable blocks of a markdown file.
func parseMarkdown(t *testing.T, file string) []*block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var blocks []*block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		lang := string(fcb.Info.Segment.Value(content))

		var body strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			body.WriteString(string(line.Value(content)))
		}

		switch lang {
		case bashSetup, bashRun, bashCheck:
			blocks = append(blocks, &block{
				Type:    lang,
				Content: body.String(),
				File:    file,
				Line:    lineNumber(content, fcb.Info.Segment.Start),
			})
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// lineNumber computes the line number of an AST offset. The parser
// does not expose it.
func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

// blockRunner holds the state shared by the blocks of one file.
type blockRunner struct {
	env       []string
	tmpFolder string
}

func (r *blockRunner) runBlock(t *testing.T, b *block) {
	t.Helper()

	// A new setup starts a fresh scenario folder.
	if b.Type == bashSetup {
		r.tmpFolder = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", "set -e; "+b.Content)
	cmd.Dir = r.tmpFolder
	cmd.Env = r.env
	output, err := cmd.CombinedOutput()
	if err != nil {
		switch b.Type {
		case bashSetup, bashRun:
			t.Fatalf("%s:%d: %s failed: %v with output:\n%s\n", b.File, b.Line, b.Type, err, output)
		case bashCheck:
			t.Errorf("%s:%d: %s failed: %v with output:\n%s\n", b.File, b.Line, b.Type, err, output)
		default:
			t.Fatalf("%s:%d: unknown block type: %s", b.File, b.Line, b.Type)
		}
	}
}

// runBlocks executes the scenarios of one markdown file in order.
func runBlocks(t *testing.T, file string) {
	t.Helper()

	globalTmp := t.TempDir()
	mbkPath := buildMbk(t, globalTmp)
	mbkDir := filepath.Dir(mbkPath)

	newPath := fmt.Sprintf("PATH=%s%c%s", mbkDir, os.PathListSeparator, os.Getenv("PATH"))
	baseEnv := append(os.Environ(), newPath)

	blocks := parseMarkdown(t, file)
	if len(blocks) == 0 {
		return
	}

	r := blockRunner{
		env:       baseEnv,
		tmpFolder: t.TempDir(),
	}
	for _, b := range blocks {
		r.runBlock(t, b)
	}
}
