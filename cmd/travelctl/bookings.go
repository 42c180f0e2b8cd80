package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wanderlust/travel-client/client"
)

func newBookingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "bookings", Short: "Reservations"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Bookings().List(ctx)
			if err := check(res); err != nil {
				return err
			}
			rows := make([][]string, 0, len(res.Data))
			for _, b := range res.Data {
				rows = append(rows, []string{
					b.BookingID, b.CustomerName, b.DestinationName,
					b.CheckInDate, b.CheckOutDate, strconv.Itoa(b.NumberOfGuests),
					money(b.TotalPrice), b.Status,
				})
			}
			return a.printTable(cmd, res.Data,
				[]string{"ID", "CUSTOMER", "DESTINATION", "CHECK-IN", "CHECK-OUT", "GUESTS", "TOTAL", "STATUS"}, rows)
		},
	})
	cmd.AddCommand(newBookingCreateCmd(a))
	return cmd
}

func newBookingCreateCmd(a *app) *cobra.Command {
	var (
		b     client.Booking
		price string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a destination or package",
		RunE: func(cmd *cobra.Command, args []string) error {
			b.PackagePrice = client.ParsePrice(price)
			if err := client.Validate(b); err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Bookings().Create(ctx, b)
			if err := check(res); err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(cmd, res.Data)
			}
			days := client.StayDays(b.CheckInDate, b.CheckOutDate)
			total := client.TotalPrice(b.PackagePrice, b.CheckInDate, b.CheckOutDate, b.NumberOfGuests)
			return a.printMessage(cmd, fmt.Sprintf("Booking submitted: %d day(s), %d guest(s), total %s",
				days, b.NumberOfGuests, money(total)))
		},
	}
	f := cmd.Flags()
	f.StringVar(&b.CustomerName, "name", "", "Guest name (required)")
	f.StringVar(&b.Email, "email", "", "Email (required)")
	f.StringVar(&b.Phone, "phone", "", "Phone (required)")
	f.StringVar(&b.CheckInDate, "check-in", "", "Check-in date, YYYY-MM-DD (required)")
	f.StringVar(&b.CheckOutDate, "check-out", "", "Check-out date, YYYY-MM-DD (required)")
	f.IntVar(&b.NumberOfGuests, "guests", 1, "Number of guests")
	f.StringVar(&b.SpecialRequests, "requests", "", "Special requests")
	f.StringVar(&b.DestinationID, "destination-id", "", "Destination or package id")
	f.StringVar(&b.DestinationName, "destination", "", "Destination name")
	f.StringVar(&price, "price", "0", "Price per day and guest; currency text such as ₹15,000 is accepted")
	for _, name := range []string{"name", "email", "phone", "check-in", "check-out"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newFeedbackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "feedback", Short: "Customer testimonials"}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Feedback().List(ctx)
			if err := check(res); err != nil {
				return err
			}
			noteFallback(res, "feedback")
			items := client.FilterFeedback(res.Data, search)
			rows := make([][]string, 0, len(items))
			for _, f := range items {
				rows = append(rows, []string{
					strconv.FormatInt(f.FeedbackID, 10), f.CustomerName, strconv.Itoa(f.Rating),
					f.Destination, truncate(f.Feedback, 48),
				})
			}
			return a.printTable(cmd, items, []string{"ID", "CUSTOMER", "RATING", "DESTINATION", "FEEDBACK"}, rows)
		},
	}
	list.Flags().StringVar(&search, "search", "", "Only show feedback whose customer or text contains this text")
	cmd.AddCommand(list)

	var fb client.Feedback
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Validate(fb); err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Feedback().Submit(ctx, fb)
			if err := check(res); err != nil {
				return err
			}
			return a.printMessage(cmd, "Thank you for your feedback!")
		},
	}
	f := submit.Flags()
	f.StringVar(&fb.CustomerName, "name", "", "Your name (required)")
	f.IntVar(&fb.Rating, "rating", 5, "Rating from 1 to 5")
	f.StringVar(&fb.Feedback, "text", "", "Feedback text (required)")
	f.StringVar(&fb.Destination, "destination", "", "Destination visited")
	_ = submit.MarkFlagRequired("name")
	_ = submit.MarkFlagRequired("text")
	cmd.AddCommand(submit)
	return cmd
}
