package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/internal/cli"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/generation"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

const usersJSON = `[{"name":"Ada","email":"ada@example.com"},{"name":"Linus","email":"linus@example.com"}]`

const usersCanonical = `[
  {
    "name": "Ada",
    "email": "ada@example.com"
  },
  {
    "name": "Linus",
    "email": "linus@example.com"
  }
]`

type commandEnv struct {
	dir    string
	status *bytes.Buffer
	errOut *bytes.Buffer
}

// setupCommandTest runs the test in a temp directory and captures status
// output.
func setupCommandTest(t *testing.T) *commandEnv {
	t.Helper()
	env := &commandEnv{
		dir:    t.TempDir(),
		status: new(bytes.Buffer),
		errOut: new(bytes.Buffer),
	}

	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(env.dir))

	cli.SetOutput(env.status, env.errOut)
	cli.SetGlobalFlags(false, true, false)

	t.Cleanup(func() {
		os.Chdir(oldDir)
		cli.SetOutput(os.Stdout, os.Stderr)
		cli.SetGlobalFlags(false, false, false)
		newCommandContext = cli.NewCommandContext
	})
	return env
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte(content), 0644))
	return name
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestImportCommand(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		args     []string
		wantErr  error
		contains []string
		warnings []string
	}{
		{
			name:     "canonical output",
			content:  usersJSON,
			contains: []string{usersCanonical},
		},
		{
			name:     "duplicate keys collapse with a warning",
			content:  `[{"a":1,"b":2,"a":3}]`,
			contains: []string{"[\n  {\n    \"a\": 3,\n    \"b\": 2\n  }\n]"},
			warnings: []string{`Duplicate key "a" in object /0`},
		},
		{
			name:     "summary table",
			content:  `[{"name":"Ada","email":"a@x"},[1,2],"note"]`,
			args:     []string{"--summary"},
			contains: []string{"TYPE", "object", "name, email", "2 elements", "note"},
		},
		{
			name:    "object root is rejected",
			content: `{"name":"Ada"}`,
			wantErr: models.ErrInvalidRootShape,
		},
		{
			name:    "invalid JSON is rejected",
			content: `[{"name":}]`,
			wantErr: models.ErrInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupCommandTest(t)
			path := writeDoc(t, "doc.json", tt.content)

			out, err := execute(NewImportCommand(), append([]string{path}, tt.args...)...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, want := range tt.warnings {
				assert.Contains(t, env.errOut.String(), want)
			}
		})
	}
}

func TestImportCommandMissingFile(t *testing.T) {
	setupCommandTest(t)
	_, err := execute(NewImportCommand(), "missing.json")
	assert.ErrorContains(t, err, "does not exist")
}

func TestExportCommand(t *testing.T) {
	t.Run("stdout json", func(t *testing.T) {
		setupCommandTest(t)
		path := writeDoc(t, "users.json", usersJSON)

		out, err := execute(NewExportCommand(), path)
		require.NoError(t, err)
		assert.Equal(t, usersCanonical+"\n", out)
	})

	t.Run("stdout yaml", func(t *testing.T) {
		setupCommandTest(t)
		path := writeDoc(t, "users.json", usersJSON)

		out, err := execute(NewExportCommand(), path, "-o", "yaml")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "- name: Ada\n"), "got %q", out)
		assert.Contains(t, out, "email: linus@example.com")
	})

	t.Run("stdout jsonl", func(t *testing.T) {
		setupCommandTest(t)
		path := writeDoc(t, "users.json", usersJSON)

		out, err := execute(NewExportCommand(), path, "-o", "jsonl")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"Ada","email":"ada@example.com"}`+"\n"+`{"name":"Linus","email":"linus@example.com"}`+"\n", out)
	})

	t.Run("file gets json extension", func(t *testing.T) {
		env := setupCommandTest(t)
		path := writeDoc(t, "users.json", usersJSON)

		_, err := execute(NewExportCommand(), path, "--file", "out/copy")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join("out", "copy.json"))
		require.NoError(t, err)
		assert.Equal(t, usersCanonical+"\n", string(data))
		assert.Contains(t, env.status.String(), "Exported 2 items to out/copy.json (json,")
	})

	t.Run("yaml file", func(t *testing.T) {
		setupCommandTest(t)
		path := writeDoc(t, "users.json", usersJSON)

		_, err := execute(NewExportCommand(), path, "-o", "yaml", "-f", "users.yaml")
		require.NoError(t, err)
		data, err := os.ReadFile("users.yaml")
		require.NoError(t, err)
		assert.Contains(t, string(data), "name: Ada")
	})

	t.Run("unknown format", func(t *testing.T) {
		setupCommandTest(t)
		path := writeDoc(t, "users.json", usersJSON)

		_, err := execute(NewExportCommand(), path, "-o", "xml")
		assert.ErrorContains(t, err, "invalid output format")
	})
}

func TestPreviewCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  string
	}{
		{
			name:     "plain",
			contains: []string{usersCanonical},
		},
		{
			name: "html",
			args: []string{"--html"},
			contains: []string{
				`<pre class="font-mono text-sm">`,
				`<span class="text-[#9cdcfe]">"name"</span>`,
				`<span class="text-[#ce9178]">"Ada"</span>`,
			},
		},
		{
			name:     "color without a terminal falls back to plain text",
			args:     []string{"--color"},
			contains: []string{`"email": "ada@example.com"`},
		},
		{
			name:    "flags are exclusive",
			args:    []string{"--color", "--html"},
			wantErr: "choose one of --color or --html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCommandTest(t)
			path := writeDoc(t, "users.json", usersJSON)

			out, err := execute(NewPreviewCommand(), append([]string{path}, tt.args...)...)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var copied string
	old := writeClipboard
	writeClipboard = func(text string) error {
		if err != nil {
			return err
		}
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = old })
	return &copied
}

func TestClipboardCommand(t *testing.T) {
	env := setupCommandTest(t)
	path := writeDoc(t, "users.json", usersJSON)
	copied := stubClipboard(t, nil)

	_, err := execute(NewClipboardCommand(), path)
	require.NoError(t, err)
	assert.Equal(t, usersCanonical, *copied)
	assert.Contains(t, env.status.String(), "Copied 2 items to clipboard")
	assert.Contains(t, env.status.String(), "tokens)")
	assert.Empty(t, env.errOut.String())
}

func TestClipboardCommandFailure(t *testing.T) {
	setupCommandTest(t)
	path := writeDoc(t, "users.json", usersJSON)
	stubClipboard(t, errors.New("no display"))

	_, err := execute(NewClipboardCommand(), path)
	assert.ErrorContains(t, err, "failed to copy to clipboard: no display")
}

func TestTableCommand(t *testing.T) {
	setupCommandTest(t)
	path := writeDoc(t, "users.json", `[{"name":"<b>Ada</b>","age":36},{"name":"Linus"}]`)

	out, err := execute(NewTableCommand(), path)
	require.NoError(t, err)
	assert.Contains(t, out, `<table style=`)
	assert.Contains(t, out, `>name</th>`)
	assert.Contains(t, out, `>age</th>`)
	assert.Contains(t, out, `&lt;b&gt;Ada&lt;/b&gt;`)
	assert.Contains(t, out, `>36</td>`)
}

func TestTableCommandCopy(t *testing.T) {
	env := setupCommandTest(t)
	path := writeDoc(t, "users.json", usersJSON)
	copied := stubClipboard(t, nil)

	out, err := execute(NewTableCommand(), path, "--copy")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.True(t, strings.HasPrefix(*copied, "<table"))
	assert.Contains(t, env.status.String(), "Copied a table of 2 rows")
}

type fakeClient struct {
	reply   string
	err     error
	request generation.Request
}

func (f *fakeClient) GenerateContent(ctx context.Context, req generation.Request) (string, error) {
	f.request = req
	return f.reply, f.err
}

func useClient(client generation.Client) {
	newCommandContext = func() *cli.CommandContext {
		ctx := cli.NewCommandContext()
		ctx.Client = client
		return ctx
	}
}

func TestGenerateCommand(t *testing.T) {
	t.Run("prints the generated document", func(t *testing.T) {
		setupCommandTest(t)
		client := &fakeClient{reply: usersJSON}
		useClient(client)

		out, err := execute(NewGenerateCommand(), "--prompt", "two users")
		require.NoError(t, err)
		assert.Equal(t, usersCanonical+"\n", out)
		assert.True(t, client.request.JSON)
		assert.Contains(t, client.request.Prompt, `"two users"`)
	})

	t.Run("non-array reply is rejected", func(t *testing.T) {
		setupCommandTest(t)
		useClient(&fakeClient{reply: `{"name":"Ada"}`})

		_, err := execute(NewGenerateCommand(), "--prompt", "one user", "--file", "users.json")
		require.Error(t, err)
		assert.True(t, errors.Is(err, generation.ErrNotAnArray))
		assert.True(t, errors.Is(err, models.ErrInvalidRootShape))
		_, statErr := os.Stat("users.json")
		assert.True(t, os.IsNotExist(statErr), "no file should be written")
	})

	t.Run("service failure", func(t *testing.T) {
		setupCommandTest(t)
		useClient(&fakeClient{err: errors.New("quota exceeded")})

		_, err := execute(NewGenerateCommand(), "--prompt", "users")
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrExternalService))
	})

	t.Run("writes file and shows diff", func(t *testing.T) {
		env := setupCommandTest(t)
		cli.SetGlobalFlags(false, true, true)
		writeDoc(t, "users.json", "[\n  {\n    \"name\": \"Ada\",\n    \"email\": \"ada@example.com\"\n  }\n]\n")
		useClient(&fakeClient{reply: usersJSON})

		out, err := execute(NewGenerateCommand(), "--prompt", "two users", "--file", "users", "--diff")
		require.NoError(t, err)
		assert.Contains(t, out, "+   {")
		assert.Contains(t, out, `+     "name": "Linus",`)
		assert.Contains(t, env.status.String(), "4 lines added, 0 removed")

		data, err := os.ReadFile("users.json")
		require.NoError(t, err)
		assert.Equal(t, usersCanonical+"\n", string(data))
		assert.Contains(t, env.status.String(), "Generated 2 items into users.json")
	})

	t.Run("free text with context", func(t *testing.T) {
		setupCommandTest(t)
		writeDoc(t, "notes.txt", "Ada wrote the first program.")
		client := &fakeClient{reply: "Ada Lovelace."}
		useClient(client)

		out, err := execute(NewGenerateCommand(), "--text", "--prompt", "Who?", "--context", "notes.txt")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace.\n", out)
		assert.Equal(t, "Context:\nAda wrote the first program.\n\nTask: Who?", client.request.Prompt)
		assert.False(t, client.request.JSON)
	})

	t.Run("free text failure prints the sentinel", func(t *testing.T) {
		env := setupCommandTest(t)
		useClient(&fakeClient{err: errors.New("down")})

		out, err := execute(NewGenerateCommand(), "--text", "--prompt", "Who?")
		require.NoError(t, err)
		assert.Equal(t, generation.TextFailure+"\n", out)
		assert.Contains(t, env.errOut.String(), "text generation failed")
	})

	t.Run("missing key", func(t *testing.T) {
		setupCommandTest(t)
		t.Setenv("API_KEY", "")
		t.Setenv(generation.FallbackAPIKeyEnv, "")

		_, err := execute(NewGenerateCommand(), "--prompt", "users")
		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrConfiguration))
	})
}

func TestGenerateCommandFlagValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"prompt required", nil, "--prompt is required"},
		{"diff needs file", []string{"--prompt", "x", "--diff"}, "--diff needs --file"},
		{"context needs text", []string{"--prompt", "x", "--context", "a.txt"}, "--context is only used with --text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCommandTest(t)
			useClient(&fakeClient{})
			_, err := execute(NewGenerateCommand(), tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
