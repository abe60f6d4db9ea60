package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"unveil/internal/domain/entity"
	"unveil/internal/usecase"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var userFlag = &cli.StringFlag{
	Name:     "user",
	Aliases:  []string{"u"},
	Required: true,
	Usage:    "specify the creator profile YAML",
}

var offersCmd = &cli.Command{
	Name:    "offers",
	Usage:   "List every offer in the catalog",
	Aliases: []string{"o"},
	Action: func(c *cli.Context) error {
		return runApp(c, func(ctx context.Context, matching usecase.MatchingUsecase) error {
			offers, err := matching.GetAllOffers(ctx)
			if err != nil {
				return err
			}

			w := newTable(c.App.Writer)
			fmt.Fprintln(w, "ID\tBUSINESS\tTITLE\tCATEGORY\tLEVEL\tLOCATION")
			for _, offer := range offers {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					offer.ID, offer.BusinessName, offer.Title, offer.Category, offer.RequiredLevel, location(offer))
			}

			return w.Flush()
		})
	},
}

var matchCmd = &cli.Command{
	Name:    "match",
	Usage:   "Show the offers that fit a creator, best first",
	Aliases: []string{"m"},
	Flags: []cli.Flag{
		userFlag,
		&cli.BoolFlag{
			Name:  "detailed",
			Usage: "include weaker matches with their score and reasons",
		},
	},
	Action: func(c *cli.Context) error {
		detailed := c.Bool("detailed")

		return runApp(c, func(ctx context.Context, matching usecase.MatchingUsecase, user *entity.User) error {
			w := newTable(c.App.Writer)

			if detailed {
				matches, err := matching.GetMatchingOffersWithDetails(ctx, user)
				if err != nil {
					return err
				}

				fmt.Fprintln(w, "ID\tSCORE\tTITLE\tMATCHES")
				for _, match := range matches {
					fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n",
						match.Offer.ID, match.Score, match.Offer.Title, strings.Join(match.Matches, "; "))
				}

				return w.Flush()
			}

			items, err := matching.GetFeed(ctx, user)
			if err != nil {
				return err
			}

			fmt.Fprintln(w, "ID\tTITLE\tBUSINESS\tSTATUS")
			for _, item := range items {
				status := "-"
				if item.Applied {
					status = item.Status.Label()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.Offer.ID, item.Offer.Title, item.Offer.BusinessName, status)
			}

			return w.Flush()
		})
	},
}

var proposeCmd = &cli.Command{
	Name:    "propose",
	Usage:   "Send a proposal for an offer and wait for the business answer",
	Aliases: []string{"p"},
	Flags: []cli.Flag{
		userFlag,
		&cli.StringFlag{
			Name:     "offer",
			Required: true,
			Usage:    "specify the offer ID",
		},
		&cli.StringSliceFlag{
			Name:     "date",
			Required: true,
			Usage:    "specify a proposed date as YYYY-MM-DD (repeat for a second option)",
		},
		&cli.StringFlag{
			Name:  "message",
			Usage: "specify a note for the business",
		},
	},
	Action: func(c *cli.Context) error {
		dates, err := parseDates(c.StringSlice("date"))
		if err != nil {
			return err
		}

		offerID := c.String("offer")
		message := c.String("message")

		return runApp(c, func(ctx context.Context, proposals usecase.ProposalUsecase, user *entity.User) error {
			response, err := proposals.SubmitProposal(ctx, &usecase.SubmitProposalInput{
				OfferID:       offerID,
				CreatorID:     user.ID,
				ProposedDates: dates,
				Message:       message,
				Creator:       user,
			})
			if err != nil {
				return err
			}

			printResponse(c.App.Writer, response)

			return nil
		})
	},
}

var simulateCmd = &cli.Command{
	Name:    "simulate",
	Usage:   "Propose to the top offers of the feed and report the resulting campaigns",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		userFlag,
		&cli.IntFlag{
			Name:  "count",
			Value: 3,
			Usage: "specify how many feed offers to propose to",
		},
	},
	Action: func(c *cli.Context) error {
		count := c.Int("count")
		if count <= 0 {
			return errors.New("invalid count")
		}

		return runApp(c, func(
			ctx context.Context,
			matching usecase.MatchingUsecase,
			proposals usecase.ProposalUsecase,
			campaigns usecase.CampaignUsecase,
			user *entity.User,
		) error {
			offers, err := matching.GetMatchingOffers(ctx, user)
			if err != nil {
				return err
			}
			if len(offers) > count {
				offers = offers[:count]
			}

			date := time.Now().AddDate(0, 0, 7)
			for _, offer := range offers {
				response, err := proposals.SubmitProposal(ctx, &usecase.SubmitProposalInput{
					OfferID:       offer.ID,
					CreatorID:     user.ID,
					ProposedDates: []time.Time{date},
					Creator:       user,
				})
				if err != nil {
					return errors.Wrapf(err, "propose to %s", offer.ID)
				}

				fmt.Fprintf(c.App.Writer, "%s: ", offer.ID)
				printResponse(c.App.Writer, response)
			}

			userCampaigns, err := campaigns.GetUserCampaigns(ctx, user.ID)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer)
			w := newTable(c.App.Writer)
			fmt.Fprintln(w, "CAMPAIGN\tOFFER\tBUSINESS\tSTATUS\tEXPIRES")
			for _, campaign := range userCampaigns {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					campaign.ID, campaign.OfferID, campaign.BusinessID, campaign.Status.Label(),
					campaign.ExpiresAt.Format(time.DateOnly))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			applied, err := campaigns.GetAppliedOffersByUser(ctx, user.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "\nApplied offers: %s\n", strings.Join(applied, ", "))

			return nil
		})
	},
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func location(offer *entity.Offer) string {
	if offer.IsRemote {
		return "Remoto"
	}

	parts := make([]string, 0, 2)
	for _, part := range []string{offer.City, offer.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

func parseDates(values []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(values))
	for _, value := range values {
		date, err := time.ParseInLocation(time.DateOnly, value, time.Local)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid date %q", value)
		}
		dates = append(dates, date)
	}

	return dates, nil
}

func printResponse(out io.Writer, response *entity.BusinessResponse) {
	fmt.Fprintln(out, response.Message)
	if response.Campaign != nil {
		fmt.Fprintf(out, "  campaign %s (%s), expires %s\n",
			response.Campaign.ID, response.Campaign.Status.Label(), response.Campaign.ExpiresAt.Format(time.DateOnly))
	}
}
