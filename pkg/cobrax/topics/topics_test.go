package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"dry-run.txt":      {Data: []byte("Information about dry-run mode")},
		"architecture.md":  {Data: []byte("# Architecture\n\nSystem architecture details")},
		"config.txxt":      {Data: []byte("Configuration Guide\n==================")},
		"ignore.json":      {Data: []byte("This should be ignored")},
		"advanced/deep.md": {Data: []byte("Nested topic content")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(topicFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"dry-run", true, "Information about dry-run mode"},
			{"architecture", true, "# Architecture\n\nSystem architecture details"},
			{"config", false, ""}, // .txxt not in defaults
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(topicFS(), Options{
			Extensions: []string{".txt", ".md", ".txxt"},
		})
		require.NoError(t, tm.scanTopics())

		topic, exists := tm.GetTopic("config")
		assert.True(t, exists)
		assert.Equal(t, "Configuration Guide\n==================", topic.Content)
	})

	t.Run("subdirectories are walked", func(t *testing.T) {
		tm := New(topicFS())
		require.NoError(t, tm.scanTopics())

		topic, exists := tm.GetTopic("deep")
		assert.True(t, exists)
		assert.Equal(t, "Nested topic content", topic.Content)
	})

	t.Run("nil file system has no topics", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	fsys := fstest.MapFS{
		"option-dry-run.txt": {Data: []byte("Dry run help")},
		"option-verbose.txt": {Data: []byte("Verbose help")},
		"architecture.txt":   {Data: []byte("Architecture help")},
	}

	tm := New(fsys)
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		// Direct topic name
		{"architecture", "architecture", true},
		// Option topics with prefix
		{"option-dry-run", "option-dry-run", true},
		// Flag-style lookups should find option- prefixed files
		{"dry-run", "option-dry-run", true},
		{"--dry-run", "option-dry-run", true},
		{"-dry-run", "option-dry-run", true},
		{"verbose", "option-verbose", true},
		{"-v", "", false}, // Single letter flags don't match
		{"--verbose", "option-verbose", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopicManager_ListTopics(t *testing.T) {
	fsys := fstest.MapFS{}
	names := []string{"manifest", "options", "dry-run", "managers"}
	for _, name := range names {
		fsys[name+".txt"] = &fstest.MapFile{Data: []byte("Help for " + name)}
	}

	tm := New(fsys)
	require.NoError(t, tm.scanTopics())

	list := tm.ListTopics()
	assert.Len(t, list, len(names))
	for _, expected := range names {
		assert.Contains(t, list, expected)
	}
}

func TestInitialize(t *testing.T) {
	fsys := fstest.MapFS{
		"test-topic.txt": {Data: []byte("Test topic content")},
	}

	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "install",
		Short: "Install something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	require.NoError(t, Initialize(rootCmd, fsys))

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}

func TestIntegration_HelpCommand(t *testing.T) {
	fsys := fstest.MapFS{
		"dry-run.txt": {Data: []byte("DRY RUN MODE\nThis is a test of dry run help.")},
	}

	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}
	require.NoError(t, Initialize(rootCmd, fsys))

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"help", "dry-run"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "DRY RUN MODE")
}

func TestIntegration_TopicList(t *testing.T) {
	fsys := fstest.MapFS{
		"manifest.md":        {Data: []byte("# Manifest")},
		"option-dry-run.txt": {Data: []byte("Dry run")},
	}

	rootCmd := &cobra.Command{Use: "testapp"}
	require.NoError(t, Initialize(rootCmd, fsys))

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"help", "topics"})
	require.NoError(t, rootCmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "General topics:")
	assert.Contains(t, output, "  manifest")
	assert.Contains(t, output, "Option topics:")
	assert.Contains(t, output, "  --dry-run")
	assert.Contains(t, output, "Use 'testapp help <topic>'")
}
