package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/evcraddock/rent-finder/internal/client"
	"github.com/evcraddock/rent-finder/internal/listing"
	"github.com/evcraddock/rent-finder/internal/property"
)

// retryDelay is the pause between publish attempts after a transient failure.
var retryDelay = 2 * time.Second

type addFlags struct {
	title       string
	location    string
	price       string
	period      string
	bedrooms    string
	area        string
	typ         string
	city        string
	images      []string
	lat         float64
	lng         float64
	description string
	retries     int
}

func newAddCmd() *cobra.Command {
	var f addFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Publish a new listing",
		Long: "Upload a new listing. It needs a title, description, address, a positive price " +
			"and exactly three images. Uploads that fail in transit can be retried with --retries.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "", "listing title")
	cmd.Flags().StringVar(&f.location, "location", "", "street address or area")
	cmd.Flags().StringVar(&f.price, "price", "", `price, e.g. "45000" or "KES 45,000"`)
	cmd.Flags().StringVar(&f.period, "period", "/month", "rent period")
	cmd.Flags().StringVar(&f.bedrooms, "bedrooms", "", "bedrooms, e.g. 2")
	cmd.Flags().StringVar(&f.area, "area", "", "floor area, e.g. 120 m²")
	cmd.Flags().StringVar(&f.typ, "type", string(property.Apartment), "property type")
	cmd.Flags().StringVar(&f.city, "city", string(property.AddisAbaba), "city")
	cmd.Flags().StringArrayVar(&f.images, "image", nil, "image URL (repeat three times)")
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&f.lng, "lng", 0, "longitude")
	cmd.Flags().StringVar(&f.description, "description", "", "listing description")
	cmd.Flags().IntVar(&f.retries, "retries", 0, "extra attempts after a network failure")

	return cmd
}

func runAdd(cmd *cobra.Command, f addFlags) error {
	req := client.PublishRequest{
		Draft: property.Draft{
			Title:       f.title,
			Location:    f.location,
			Period:      f.period,
			Bedrooms:    f.bedrooms,
			Area:        f.area,
			Type:        property.Type(f.typ),
			City:        property.City(f.city),
			Images:      f.images,
			Coords:      property.Coords{Lat: f.lat, Lng: f.lng},
			Description: f.description,
		},
		PriceText: f.price,
	}

	out := cmd.OutOrStdout()
	if !isJSON() {
		fmt.Fprintf(out, "Uploading: %s\n", f.title)
	}

	p, err := publishWithRetry(cmd.Context(), newAPIClient(), req, f.retries, out)
	if err != nil {
		return fmt.Errorf("adding property: %w", err)
	}

	if isJSON() {
		return printJSON(out, p)
	}

	fmt.Fprintln(out, p.Message)
	fmt.Fprintf(out, "Property #%d added.\n", p.ID)
	return nil
}

type publishClient interface {
	PublishProperty(ctx context.Context, req client.PublishRequest) (*listing.Published, error)
}

// publishWithRetry publishes req, retrying up to retries more times when the
// server reports a retryable failure.
func publishWithRetry(ctx context.Context, c publishClient, req client.PublishRequest, retries int, out io.Writer) (*listing.Published, error) {
	for attempt := 0; ; attempt++ {
		p, err := c.PublishProperty(ctx, req)
		if err == nil {
			return p, nil
		}
		if !client.IsRetryable(err) || attempt >= retries {
			return nil, err
		}

		if !isJSON() {
			fmt.Fprintf(out, "%v, retrying (%d/%d)...\n", err, attempt+1, retries)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
}
