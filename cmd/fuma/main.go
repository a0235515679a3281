package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HITSZ-OpenAuto/fuma-go/internal/config"
	"github.com/HITSZ-OpenAuto/fuma-go/internal/fetcher"
	"github.com/HITSZ-OpenAuto/fuma-go/internal/generator"
	"github.com/HITSZ-OpenAuto/fuma-go/internal/loader"
	"github.com/HITSZ-OpenAuto/fuma-go/internal/mdx"
	"github.com/HITSZ-OpenAuto/fuma-go/internal/tree"
)

var version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "fuma",
	Short: "Fumadocs content generator for HITSZ-OpenAuto",
	Long: `Builds the course documentation tree from training plans and
per-course repositories: fetches READMEs and worktree manifests from
GitHub, generates MDX pages with navigation metadata, and normalizes
the Markdown into the MDX dialect the site builds from.`,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch course READMEs and worktree manifests from GitHub",
	RunE:  runFetch,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the docs tree from plans and fetched repos",
	RunE:  runGenerate,
}

var formatCmd = &cobra.Command{
	Use:   "format [dir]",
	Short: "Normalize MDX files in a docs tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFormat,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(formatCmd)

	rootCmd.PersistentFlags().String("data", ".", "Training plan data directory")
	rootCmd.PersistentFlags().String("repos", "", "Fetched repo cache directory")
	rootCmd.PersistentFlags().String("docs", "", "Docs output directory")
	fetchCmd.Flags().IntP("concurrency", "c", 0, "Parallel fetch limit")

	viper.BindPFlag("concurrency", fetchCmd.Flags().Lookup("concurrency"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

// applyDirFlags lets --repos and --docs override the configured layout.
func applyDirFlags(cmd *cobra.Command) {
	if repos, _ := cmd.Flags().GetString("repos"); repos != "" {
		config.SetReposDir(repos)
	}
	if docs, _ := cmd.Flags().GetString("docs"); docs != "" {
		config.SetDocsDir(docs)
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	applyDirFlags(cmd)
	dataDir, _ := cmd.Flags().GetString("data")

	reposSet, err := loader.LoadReposList(dataDir)
	if err != nil {
		return err
	}
	if len(reposSet) == 0 {
		return fmt.Errorf("nothing to fetch: repos_list.txt in %s is missing or empty", dataDir)
	}

	repos := make([]string, 0, len(reposSet))
	for repo := range reposSet {
		repos = append(repos, repo)
	}
	sort.Strings(repos)

	token := config.GetToken()
	if token == "" {
		token = fetcher.ResolveToken()
	}
	if token == "" {
		fmt.Fprintln(os.Stderr, "Warning: no GitHub token found, fetching unauthenticated")
	}

	concurrency := config.GetConcurrency()
	if concurrency < 1 {
		concurrency = 1
	}

	return fetcher.FetchAll(cmd.Context(), token, config.GetOrg(), repos,
		config.GetWorktreeRef(), config.GetReposDir(), concurrency,
		config.GetSkipExisting())
}

func runGenerate(cmd *cobra.Command, args []string) error {
	applyDirFlags(cmd)
	dataDir, _ := cmd.Flags().GetString("data")
	start := time.Now()

	plans, err := loader.LoadAllPlans(dataDir, config.GetPlansDir())
	if err != nil {
		return fmt.Errorf("loading plans: %w", err)
	}
	shared := loader.LoadSharedCategories(dataDir)
	summary := loader.LoadGradesSummary(dataDir)
	reposSet, err := loader.LoadReposList(dataDir)
	if err != nil {
		return err
	}

	reposDir := config.GetReposDir()
	docsDir := config.GetDocsDir()
	mirror := tree.Mirror{
		Host:   config.GetMirrorHost(),
		Org:    config.GetOrg(),
		Branch: config.GetBranch(),
	}

	err = generator.Generate(generator.Params{
		Plans:            plans,
		SharedCategories: shared.Categories,
		NoCourseInfo:     shared.NoCourseInfoSet(),
		GradesSummary:    summary,
		ReposDir:         reposDir,
		DocsDir:          docsDir,
		ReposSet:         reposSet,
		FilesHost:        config.GetFilesHost(),
		Mirror:           mirror,
	})
	if err != nil {
		return err
	}

	if err := generator.GenerateSpecialCategories(reposDir, docsDir, config.GetFilesHost(), mirror, reposSet); err != nil {
		return fmt.Errorf("generating special categories: %w", err)
	}

	modified, err := mdx.FormatDir(docsDir)
	if err != nil {
		return err
	}

	fmt.Printf("Generated docs for %d plans in %v (%d files normalized)\n",
		len(plans), time.Since(start).Round(time.Millisecond), modified)
	return nil
}

func runFormat(cmd *cobra.Command, args []string) error {
	applyDirFlags(cmd)
	dir := config.GetDocsDir()
	if len(args) > 0 {
		dir = args[0]
	}

	modified, err := mdx.FormatDir(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Formatted %d files in %s\n", modified, dir)
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
