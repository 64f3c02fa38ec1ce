package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/tracker"
)

var (
	categoryAddColor string
	categoryAddIcon  string
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage activity categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and their sub-categories",
	Args:  cobra.NoArgs,
	RunE:  runCategoryList,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryAdd,
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <category> <new-name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryRename,
}

var categoryColorCmd = &cobra.Command{
	Use:   "color <category> <color>",
	Short: "Change a category's color",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryColor,
}

var categoryIconCmd = &cobra.Command{
	Use:   "icon <category> <icon>",
	Short: "Change a category's icon",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryIcon,
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <category>",
	Short: "Delete a category (its historical entries are kept)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryDelete,
}

var categoryAddSubCmd = &cobra.Command{
	Use:   "addsub <category> <name>",
	Short: "Add a sub-category",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryAddSub,
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryAddColor, "color", "gray", "Color key (see 'ff category list' for the palette)")
	categoryAddCmd.Flags().StringVar(&categoryAddIcon, "icon", "Star", "Icon name")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryColorCmd)
	categoryCmd.AddCommand(categoryIconCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	categoryCmd.AddCommand(categoryAddSubCmd)
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	tr := mustOpenTracker()
	for _, c := range tr.Categories {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color.Hex())).Render("●")
		fmt.Printf("%s %-16s %-8s %-12s %s\n", dot, c.Name, c.Color, c.Icon, c.ID)
		for _, s := range c.SubCategories {
			fmt.Printf("    - %-14s %s\n", s.Name, s.ID)
		}
	}
	return nil
}

// parseColorArg rejects unknown color keys at the boundary so the registry
// only ever stores palette members.
func parseColorArg(s string) (model.Color, error) {
	c := model.ParseColor(s)
	if c == model.ColorUnknown {
		names := make([]string, 0, len(model.Colors()))
		for _, known := range model.Colors() {
			names = append(names, string(known))
		}
		return "", fmt.Errorf("unknown color %q (one of: %s)", s, strings.Join(names, ", "))
	}
	return c, nil
}

func parseIconArg(s string) (model.Icon, error) {
	i := model.ParseIcon(s)
	if i == model.IconUnknown {
		return "", fmt.Errorf("unknown icon %q (known icons: %s)", s, strings.Join(model.Icons(), ", "))
	}
	return i, nil
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	color, err := parseColorArg(categoryAddColor)
	if err != nil {
		return err
	}
	icon, err := parseIconArg(categoryAddIcon)
	if err != nil {
		return err
	}

	tr := mustOpenTracker()
	cat, err := tr.CreateCategory(args[0], color, icon)
	if err != nil {
		return err
	}
	fmt.Printf("Created category %q (%s)\n", cat.Name, cat.ID)
	return nil
}

func runCategoryRename(cmd *cobra.Command, args []string) error {
	tr := mustOpenTracker()
	cat := mustResolveCategory(tr, args[0])
	name := args[1]
	if err := tr.UpdateCategory(cat.ID, tracker.CategoryUpdate{Name: &name}); err != nil {
		return err
	}
	fmt.Printf("Renamed %q to %q\n", cat.Name, name)
	return nil
}

func runCategoryColor(cmd *cobra.Command, args []string) error {
	color, err := parseColorArg(args[1])
	if err != nil {
		return err
	}
	tr := mustOpenTracker()
	cat := mustResolveCategory(tr, args[0])
	if err := tr.UpdateCategory(cat.ID, tracker.CategoryUpdate{Color: &color}); err != nil {
		return err
	}
	fmt.Printf("Set color of %q to %s\n", cat.Name, color)
	return nil
}

func runCategoryIcon(cmd *cobra.Command, args []string) error {
	icon, err := parseIconArg(args[1])
	if err != nil {
		return err
	}
	tr := mustOpenTracker()
	cat := mustResolveCategory(tr, args[0])
	if err := tr.UpdateCategory(cat.ID, tracker.CategoryUpdate{Icon: &icon}); err != nil {
		return err
	}
	fmt.Printf("Set icon of %q to %s\n", cat.Name, icon)
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	tr := mustOpenTracker()
	cat := mustResolveCategory(tr, args[0])
	if err := tr.DeleteCategory(cat.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted category %q. Its entries are kept and will show as %q.\n", cat.Name, model.UnknownLabel)
	return nil
}

func runCategoryAddSub(cmd *cobra.Command, args []string) error {
	tr := mustOpenTracker()
	cat := mustResolveCategory(tr, args[0])
	sub, err := tr.AddSubCategory(cat.ID, args[1])
	if err != nil {
		return err
	}
	if sub.ID == "" {
		// Category vanished between resolve and mutate; the registry treats
		// that as a no-op.
		fmt.Fprintf(os.Stderr, "No category %q.\n", args[0])
		os.Exit(1)
	}
	fmt.Printf("Added sub-category %q to %q\n", sub.Name, cat.Name)
	return nil
}
