package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/library"
	"github.com/jonathan/resume-matcher/internal/types"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage the project library",
	Long:  "Lists, adds, and removes projects in the project library file that select-projects and tailor draw from.",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects in the library",
	RunE:  runProjectsList,
}

var projectsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or replace a project in the library",
	Long:  "Adds a project from a JSON file to the library. A project with the same name (case-insensitive) is replaced.",
	RunE:  runProjectsAdd,
}

var projectsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a project from the library by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsRemove,
}

var (
	projectsConfigPath  string
	projectsLibraryPath string
	projectsAddFile     string
)

func init() {
	projectsCmd.PersistentFlags().StringVarP(&projectsConfigPath, "config", "c", "", "Path to config JSON file")
	projectsCmd.PersistentFlags().StringVarP(&projectsLibraryPath, "library", "l", "", "Path to project library JSON file")

	projectsAddCmd.Flags().StringVarP(&projectsAddFile, "file", "f", "", "Path to project JSON file (required)")
	if err := projectsAddCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsAddCmd)
	projectsCmd.AddCommand(projectsRemoveCmd)
	rootCmd.AddCommand(projectsCmd)
}

// openLibrary resolves the library path from the flag or config file and
// loads it. The path existence check is skipped so add works on a fresh
// library file, which loads as empty.
func openLibrary() (*library.FileLibrary, error) {
	path := projectsLibraryPath
	if path == "" && projectsConfigPath != "" {
		loaded, err := config.LoadConfig(projectsConfigPath)
		if err != nil {
			return nil, err
		}
		path = loaded.ProjectLibrary
	}
	if path == "" {
		return nil, fmt.Errorf("project library path is required (set --library or the config file)")
	}
	return library.Load(path)
}

func runProjectsList(_ *cobra.Command, _ []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	projects, err := lib.GetAllProjects()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("Project library is empty.")
		return nil
	}

	for _, project := range projects {
		fmt.Printf("%s\n", project.Name)
		if len(project.TechStack) > 0 {
			fmt.Printf("  Stack: %v\n", project.TechStack)
		}
		fmt.Printf("  Bullets: %d\n", len(project.Bullets))
	}
	return nil
}

func runProjectsAdd(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(projectsAddFile)
	if err != nil {
		return fmt.Errorf("failed to read project file %s: %w", projectsAddFile, err)
	}

	var project types.ProjectItem
	if err := json.Unmarshal(data, &project); err != nil {
		return fmt.Errorf("failed to unmarshal project JSON: %w", err)
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	if err := lib.AddProject(project); err != nil {
		return err
	}

	fmt.Printf("Added project %q (%d projects in library)\n", project.Name, lib.Len())
	return nil
}

func runProjectsRemove(_ *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}

	removed, err := lib.RemoveProject(args[0])
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("project %q not found in library", args[0])
	}

	fmt.Printf("Removed project %q (%d projects in library)\n", args[0], lib.Len())
	return nil
}
