package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"zoo-web/catalog"
	"zoo-web/listing"
	"zoo-web/models"
	"zoo-web/utils"
)

var (
	catalogSearch   string
	catalogHabitat  string
	catalogRegion   string
	catalogStatus   string
	catalogActivity string
	catalogCategory string
	catalogSort     string
	catalogPage     int
)

// animalsCmd prints one page of the animal directory
var animalsCmd = &cobra.Command{
	Use:   "animals",
	Short: "List the animal directory",
	Long: `Filter and page through the animal directory the way the website does.

Example:
  zoo animals --region Asia --status Endangered`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := listing.NewView("")
		v.Apply(map[string]string{
			listing.DimSearch:   catalogSearch,
			listing.DimHabitat:  catalogHabitat,
			listing.DimRegion:   catalogRegion,
			listing.DimStatus:   catalogStatus,
			listing.DimActivity: catalogActivity,
		}, "", 0)
		v.SetPage(catalogPage)

		page, err := listing.AnimalPage(catalog.NewStore().Animals(), v)
		if err != nil {
			return err
		}
		return printAnimals(cmd.OutOrStdout(), page)
	},
}

// productsCmd prints one page of the shop
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the shop products",
	Long: `Filter, sort and page through the shop.

Example:
  zoo products --category Toys --sort priceLow`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !listing.ValidProductSort(catalogSort) {
			return fmt.Errorf("invalid sort %q: valid values are %v", catalogSort, listing.ProductSortKeys)
		}
		v := listing.NewView(catalogSort)
		v.Apply(map[string]string{
			listing.DimSearch:   catalogSearch,
			listing.DimCategory: catalogCategory,
		}, "", 0)
		v.SetPage(catalogPage)

		page, err := listing.ProductPage(catalog.NewStore().Products(), v)
		if err != nil {
			return err
		}
		return printProducts(cmd.OutOrStdout(), page)
	},
}

func init() {
	for _, c := range []*cobra.Command{animalsCmd, productsCmd} {
		c.Flags().StringVar(&catalogSearch, "search", "", "case-insensitive text search")
		c.Flags().IntVar(&catalogPage, "page", 1, "page number")
	}
	animalsCmd.Flags().StringVar(&catalogHabitat, "habitat", listing.All, "habitat filter")
	animalsCmd.Flags().StringVar(&catalogRegion, "region", listing.All, "region filter")
	animalsCmd.Flags().StringVar(&catalogStatus, "status", listing.All, "conservation status filter")
	animalsCmd.Flags().StringVar(&catalogActivity, "activity", listing.All, "activity time filter")
	productsCmd.Flags().StringVar(&catalogCategory, "category", listing.All, "category filter")
	productsCmd.Flags().StringVar(&catalogSort, "sort", listing.SortFeatured, "featured, priceLow or priceHigh")
}

func printAnimals(out io.Writer, page listing.Page[models.Animal]) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tREGION\tHABITAT\tSTATUS")
	for _, a := range page.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Region, a.Habitat, a.ConservationStatus)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\npage %d of %d, %d animals\n", page.Number, page.TotalPages, page.TotalItems)
	return err
}

func printProducts(out io.Writer, page listing.Page[models.Product]) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range page.Items {
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, utils.FormatUSD(p.Price), stock)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\npage %d of %d, %d products\n", page.Number, page.TotalPages, page.TotalItems)
	return err
}
