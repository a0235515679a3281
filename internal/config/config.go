package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Org          string `mapstructure:"org"`
	Branch       string `mapstructure:"branch"`
	WorktreeRef  string `mapstructure:"worktree_ref"`
	MirrorHost   string `mapstructure:"mirror_host"`
	FilesHost    string `mapstructure:"files_host"`
	PlansDir     string `mapstructure:"plans_dir"`
	ReposDir     string `mapstructure:"repos_dir"`
	DocsDir      string `mapstructure:"docs_dir"`
	Concurrency  int    `mapstructure:"concurrency"`
	Token        string `mapstructure:"token"`
	SkipExisting bool   `mapstructure:"skip_existing"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("org", "HITSZ-OpenAuto")
	viper.SetDefault("branch", "main")
	viper.SetDefault("worktree_ref", "worktree")
	viper.SetDefault("mirror_host", "gh.hoa.moe")
	viper.SetDefault("files_host", "open.osa.moe")
	viper.SetDefault("plans_dir", "plans")
	viper.SetDefault("repos_dir", "repos")
	viper.SetDefault("docs_dir", "content/docs")
	viper.SetDefault("concurrency", 10) // Parallel repo fetches
	viper.SetDefault("token", "")       // Falls back to env and gh
	viper.SetDefault("skip_existing", true)

	viper.SetConfigName("fuma")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "fuma"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("FUMA")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetOrg returns the GitHub organization course repos live under
func GetOrg() string {
	return viper.GetString("org")
}

// GetBranch returns the branch course content is read from
func GetBranch() string {
	return viper.GetString("branch")
}

// GetWorktreeRef returns the ref holding worktree manifests
func GetWorktreeRef() string {
	return viper.GetString("worktree_ref")
}

// GetMirrorHost returns the download mirror for raw file links
func GetMirrorHost() string {
	return viper.GetString("mirror_host")
}

// GetFilesHost returns the host serving the file browser pages
func GetFilesHost() string {
	return viper.GetString("files_host")
}

// GetPlansDir returns the plans subdirectory name within the data directory
func GetPlansDir() string {
	return viper.GetString("plans_dir")
}

// GetReposDir returns the fetched repo cache directory with tilde expansion
func GetReposDir() string {
	return expandTilde(viper.GetString("repos_dir"))
}

// GetDocsDir returns the generated docs output directory with tilde expansion
func GetDocsDir() string {
	return expandTilde(viper.GetString("docs_dir"))
}

// GetConcurrency returns the parallel fetch limit
func GetConcurrency() int {
	return viper.GetInt("concurrency")
}

// GetToken returns the configured GitHub token, possibly empty
func GetToken() string {
	return viper.GetString("token")
}

// GetSkipExisting returns whether already-fetched repos are skipped
func GetSkipExisting() bool {
	return viper.GetBool("skip_existing")
}

// SetReposDir sets the repo cache directory at runtime
func SetReposDir(dir string) {
	viper.Set("repos_dir", dir)
	C.ReposDir = dir
}

// SetDocsDir sets the docs output directory at runtime
func SetDocsDir(dir string) {
	viper.Set("docs_dir", dir)
	C.DocsDir = dir
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
