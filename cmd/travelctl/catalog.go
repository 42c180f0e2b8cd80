package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wanderlust/travel-client/client"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// errRecordUnknown stops an update when the stored record could only be
// read from the offline catalog.
var errRecordUnknown = errors.New("cannot update: backend unavailable, current record unknown")

// ---- packages ----

func newPackagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "packages", Short: "Tour packages"}
	cmd.AddCommand(newPackagesListCmd(a))
	cmd.AddCommand(newPackageWriteCmd(a, false))
	cmd.AddCommand(newPackageWriteCmd(a, true))
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <packageId>",
		Short: "Delete a package (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			if err := check(a.client.Packages().Delete(ctx, id)); err != nil {
				return err
			}
			return a.printMessage(cmd, fmt.Sprintf("Package %d deleted", id))
		},
	})
	return cmd
}

func newPackagesListCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Packages().List(ctx)
			if err := check(res); err != nil {
				return err
			}
			noteFallback(res, "packages")
			items := client.FilterPackages(res.Data, search)
			rows := make([][]string, 0, len(items))
			for _, p := range items {
				rows = append(rows, []string{
					strconv.FormatInt(p.PackageID, 10), p.PackageName, p.PackageType,
					money(p.PackageCost), truncate(p.PackageDescription, 48),
				})
			}
			return a.printTable(cmd, items, []string{"ID", "NAME", "TYPE", "COST", "DESCRIPTION"}, rows)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Only show packages whose name or description contains this text")
	return cmd
}

// newPackageWriteCmd builds "create", or "update" when update is set. An
// update starts from the stored package so unset flags keep their values.
func newPackageWriteCmd(a *app, update bool) *cobra.Command {
	var id int64
	var name, desc, cost, ptype, pay, image string
	use, short := "create", "Create a package (admin)"
	if update {
		use, short = "update", "Update a package (admin)"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			var p client.Package
			if update {
				res := a.client.Packages().List(ctx)
				if err := check(res); err != nil {
					return err
				}
				if res.Fallback {
					return errRecordUnknown
				}
				found := false
				for _, cur := range res.Data {
					if cur.PackageID == id {
						p, found = cur, true
						break
					}
				}
				if !found {
					return fmt.Errorf("package %d not found", id)
				}
			}
			f := cmd.Flags()
			if !update || f.Changed("name") {
				p.PackageName = name
			}
			if !update || f.Changed("description") {
				p.PackageDescription = desc
			}
			if !update || f.Changed("cost") {
				p.PackageCost = client.ParsePrice(cost)
			}
			if !update || f.Changed("type") {
				p.PackageType = ptype
			}
			if !update || f.Changed("payment") {
				p.PaymentDetails = pay
			}
			if !update || f.Changed("image") {
				p.Image = image
			}
			if err := client.Validate(p); err != nil {
				return err
			}

			var res client.Result[client.Package]
			if update {
				res = a.client.Packages().Update(ctx, p)
			} else {
				res = a.client.Packages().Create(ctx, p)
			}
			if err := check(res); err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(cmd, res.Data)
			}
			return a.printMessage(cmd, fmt.Sprintf("Package %q saved", p.PackageName))
		},
	}
	f := cmd.Flags()
	if update {
		f.Int64Var(&id, "id", 0, "Package ID (required)")
		_ = cmd.MarkFlagRequired("id")
	}
	f.StringVar(&name, "name", "", "Package name")
	f.StringVar(&desc, "description", "", "Description")
	f.StringVar(&cost, "cost", "0", "Cost; currency text such as ₹15,000 is accepted")
	f.StringVar(&ptype, "type", client.PackageStandard, "STANDARD, DELUXE or PREMIUM")
	f.StringVar(&pay, "payment", "", "Payment terms")
	f.StringVar(&image, "image", "", "Image reference, e.g. the URL returned by images upload")
	if !update {
		_ = cmd.MarkFlagRequired("name")
	}
	return cmd
}

// ---- travels ----

func newTravelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "travels", Short: "Partner travel agencies"}
	cmd.AddCommand(newTravelsListCmd(a))
	cmd.AddCommand(newTravelWriteCmd(a, false))
	cmd.AddCommand(newTravelWriteCmd(a, true))
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <travelId>",
		Short: "Delete a travel agency (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.context(cmd)
			defer cancel()
			if err := check(a.client.Travels().Delete(ctx, id)); err != nil {
				return err
			}
			return a.printMessage(cmd, fmt.Sprintf("Travel %d deleted", id))
		},
	})
	return cmd
}

func newTravelsListCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List travel agencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Travels().List(ctx)
			if err := check(res); err != nil {
				return err
			}
			noteFallback(res, "travels")
			items := client.FilterTravels(res.Data, search)
			rows := make([][]string, 0, len(items))
			for _, t := range items {
				rows = append(rows, []string{
					strconv.FormatInt(t.TravelID, 10), t.TravelName, t.AgentName,
					strconv.FormatInt(t.Contact, 10), t.Addr.City,
				})
			}
			return a.printTable(cmd, items, []string{"ID", "NAME", "AGENT", "CONTACT", "CITY"}, rows)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Only show travels whose name or agent contains this text")
	return cmd
}

func newTravelWriteCmd(a *app, update bool) *cobra.Command {
	var (
		id      int64
		t       client.Travel
		contact int64
	)
	use, short := "create", "Create a travel agency (admin)"
	if update {
		use, short = "update", "Update a travel agency (admin)"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			out := t
			out.Contact = contact
			if update {
				res := a.client.Travels().List(ctx)
				if err := check(res); err != nil {
					return err
				}
				if res.Fallback {
					return errRecordUnknown
				}
				var cur *client.Travel
				for i := range res.Data {
					if res.Data[i].TravelID == id {
						cur = &res.Data[i]
						break
					}
				}
				if cur == nil {
					return fmt.Errorf("travel %d not found", id)
				}
				out = mergeTravel(*cur, t, contact, cmd)
			}
			if err := client.Validate(out); err != nil {
				return err
			}

			var res client.Result[client.Travel]
			if update {
				res = a.client.Travels().Update(ctx, out)
			} else {
				res = a.client.Travels().Create(ctx, out)
			}
			if err := check(res); err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(cmd, res.Data)
			}
			return a.printMessage(cmd, fmt.Sprintf("Travel %q saved", out.TravelName))
		},
	}
	f := cmd.Flags()
	if update {
		f.Int64Var(&id, "id", 0, "Travel ID (required)")
		_ = cmd.MarkFlagRequired("id")
	}
	f.StringVar(&t.TravelName, "name", "", "Agency name")
	f.StringVar(&t.AgentName, "agent", "", "Agent name")
	f.Int64Var(&contact, "contact", 0, "Contact number")
	f.StringVar(&t.Addr.HouseNo, "house-no", "", "House number")
	f.StringVar(&t.Addr.StreetName, "street", "", "Street")
	f.StringVar(&t.Addr.City, "city", "", "City")
	f.StringVar(&t.Addr.State, "state", "", "State")
	f.StringVar(&t.Addr.Country, "country", "", "Country")
	f.StringVar(&t.Addr.Pincode, "pincode", "", "Postal code")
	if !update {
		_ = cmd.MarkFlagRequired("name")
		_ = cmd.MarkFlagRequired("agent")
	}
	return cmd
}

// mergeTravel overlays the flags the user set onto cur.
func mergeTravel(cur, in client.Travel, contact int64, cmd *cobra.Command) client.Travel {
	f := cmd.Flags()
	set := func(flag string, dst *string, v string) {
		if f.Changed(flag) {
			*dst = v
		}
	}
	set("name", &cur.TravelName, in.TravelName)
	set("agent", &cur.AgentName, in.AgentName)
	set("house-no", &cur.Addr.HouseNo, in.Addr.HouseNo)
	set("street", &cur.Addr.StreetName, in.Addr.StreetName)
	set("city", &cur.Addr.City, in.Addr.City)
	set("state", &cur.Addr.State, in.Addr.State)
	set("country", &cur.Addr.Country, in.Addr.Country)
	set("pincode", &cur.Addr.Pincode, in.Addr.Pincode)
	if f.Changed("contact") {
		cur.Contact = contact
	}
	return cur
}

// ---- hotels ----

func newHotelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "hotels", Short: "Partner hotels"}
	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List hotels",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			res := a.client.Hotels().List(ctx)
			if err := check(res); err != nil {
				return err
			}
			noteFallback(res, "hotels")
			items := client.FilterHotels(res.Data, search)
			rows := make([][]string, 0, len(items))
			for _, h := range items {
				rows = append(rows, []string{
					strconv.FormatInt(h.HotelID, 10), h.HotelName, h.HotelType,
					money(h.Rent), h.Addr.City,
				})
			}
			return a.printTable(cmd, items, []string{"ID", "NAME", "TYPE", "RENT", "CITY"}, rows)
		},
	}
	list.Flags().StringVar(&search, "search", "", "Only show hotels whose name or description contains this text")
	cmd.AddCommand(list)
	return cmd
}
