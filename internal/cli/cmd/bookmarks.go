package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/cli/styles"
	"github.com/bnema/orbit/internal/domain/entity"
)

var (
	bookmarksJSON bool
	bookmarkTags  []string
)

var bookmarksCmd = &cobra.Command{
	Use:     "bookmarks",
	Aliases: []string{"bm"},
	Short:   "Manage bookmarks",
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks in display order",
	Args:  cobra.NoArgs,
	RunE:  runBookmarksList,
}

var bookmarksAddCmd = &cobra.Command{
	Use:     "add <name> <url>",
	Short:   "Add a bookmark at the end of the list",
	Example: `  orbit bookmarks add "Go docs" https://go.dev/doc --tag dev --tag go`,
	Args:    cobra.ExactArgs(2),
	RunE:    runBookmarksAdd,
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a bookmark by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarksRemove,
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd, bookmarksAddCmd, bookmarksRemoveCmd)

	bookmarksListCmd.Flags().BoolVar(&bookmarksJSON, "json", false, "output as JSON")
	bookmarksAddCmd.Flags().StringSliceVarP(&bookmarkTags, "tag", "t", nil, "tag to attach (repeatable)")
}

func runBookmarksList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	if err := app.EnsureSeeded(ctx); err != nil {
		return err
	}
	bookmarks, err := app.BookmarksUC.List(ctx)
	if err != nil {
		return err
	}

	if bookmarksJSON {
		return printBookmarksJSON(bookmarks)
	}
	printBookmarksTable(bookmarks)
	return nil
}

type bookmarkRow struct {
	ID   int64    `json:"id"`
	Name string   `json:"name"`
	URL  string   `json:"url"`
	Tags []string `json:"tags,omitempty"`
}

func printBookmarksJSON(bookmarks []*entity.Bookmark) error {
	rows := make([]bookmarkRow, 0, len(bookmarks))
	for _, b := range bookmarks {
		rows = append(rows, bookmarkRow{ID: int64(b.ID), Name: b.Name, URL: b.URL, Tags: b.Tags})
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(data))
	return nil
}

func printBookmarksTable(bookmarks []*entity.Bookmark) {
	if len(bookmarks) == 0 {
		_, _ = fmt.Fprintln(color.Output, "no bookmarks")
		return
	}

	id := color.New(color.FgHiBlack).SprintFunc()
	name := color.New(color.Bold).SprintFunc()
	tag := color.New(color.FgCyan).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(id("ID"), name("NAME"), "URL", tag("TAGS"))
	for _, b := range bookmarks {
		tags := make([]string, 0, len(b.Tags))
		for _, t := range b.Tags {
			tags = append(tags, "#"+t)
		}
		tbl.AddRow(id(b.ID), name(b.Name), b.URL, tag(strings.Join(tags, " ")))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func runBookmarksAdd(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	if err := app.EnsureSeeded(ctx); err != nil {
		return err
	}
	b, err := app.BookmarksUC.Add(ctx, usecase.AddBookmarkInput{
		Name: args[0],
		URL:  args[1],
		Tags: bookmarkTags,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%d)\n", app.Theme.SuccessStyle.Render(styles.IconCheck), b.Name, b.ID)
	return nil
}

func runBookmarksRemove(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid bookmark id %q: %w", args[0], err)
	}
	if err := app.BookmarksUC.Remove(app.Ctx(), entity.BookmarkID(id)); err != nil {
		return err
	}

	fmt.Printf("%s removed %d\n", app.Theme.SuccessStyle.Render(styles.IconTrash), id)
	return nil
}
