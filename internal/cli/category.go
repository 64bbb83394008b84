package cli

import (
	"errors"
	"fmt"
	"strings"
)

type CategoryCmd struct {
	Add    CategoryAddCmd    `cmd:"" help:"Add a new category."`
	List   CategoryListCmd   `cmd:"" help:"List category titles."`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a category."`
}

type CategoryAddCmd struct {
	Title string `arg:"" help:"Category title."`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return errors.New("category title cannot be empty")
	}

	if err := ctx.Store.AddCategory(title); err != nil {
		return err
	}

	fmt.Printf("Added category: %s\n", title)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	titles := ctx.Store.FetchCategoryTitles()
	if len(titles) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	for _, title := range titles {
		fmt.Println(title)
	}
	return nil
}

type CategoryDeleteCmd struct {
	Title string `arg:"" help:"Category title."`
}

func (c *CategoryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteCategory(c.Title); err != nil {
		return err
	}

	fmt.Printf("Deleted category: %s\n", c.Title)
	fmt.Println("(Trackers in this category are kept and remain listed under its title)")
	return nil
}
