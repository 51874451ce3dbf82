package modules

import "github.com/goliatone/go-sitebuilder/internal/drafts"

var (
	eventOnly = []drafts.Kind{drafts.KindEvent}
	shopOnly  = []drafts.Kind{drafts.KindShop}
)

var builtinDefinitions = []Definition{
	{ID: "overview", Label: "Overview", Icon: "home", Gradient: "from-slate-500 to-slate-700", Description: "Event summary, dates, and venue.", Kinds: eventOnly, DefaultEnabled: true},
	{ID: "agenda", Label: "Agenda", Icon: "calendar", Gradient: "from-blue-500 to-indigo-600", Description: "Sessions grouped by day and track.", Kinds: eventOnly, DefaultEnabled: true},
	{ID: "speakers", Label: "Speakers", Icon: "mic", Gradient: "from-purple-500 to-fuchsia-600", Description: "Speaker profiles and their sessions.", Kinds: eventOnly, DefaultEnabled: true},
	{ID: "sponsors", Label: "Sponsors", Icon: "award", Gradient: "from-amber-400 to-orange-500", Description: "Sponsor tiers and logos.", Kinds: eventOnly, DefaultEnabled: true},
	{ID: "attendees", Label: "Attendees", Icon: "users", Gradient: "from-emerald-500 to-teal-600", Description: "Attendee directory.", Kinds: eventOnly},
	{ID: "tickets", Label: "Tickets", Icon: "ticket", Gradient: "from-rose-500 to-pink-600", Description: "Ticket types and purchase links.", Kinds: eventOnly, DefaultEnabled: true},
	{ID: "polls", Label: "Live Polls", Icon: "bar-chart", Gradient: "from-cyan-500 to-sky-600", Description: "Questions attendees answer during sessions.", Kinds: eventOnly},
	{ID: "checkin", Label: "Check-in", Icon: "scan", Gradient: "from-lime-500 to-green-600", Description: "QR check-in for attendees.", Kinds: eventOnly},
	{ID: "badges", Label: "Badges", Icon: "id-card", Gradient: "from-violet-500 to-purple-700", Description: "Printable attendee badges.", Kinds: eventOnly},
	{ID: "venue", Label: "Venue", Icon: "map-pin", Gradient: "from-red-500 to-rose-600", Description: "Maps, rooms, and directions.", Kinds: eventOnly, DefaultEnabled: true},
	{ID: "networking", Label: "Networking", Icon: "share", Gradient: "from-teal-400 to-cyan-600", Description: "Attendee matchmaking and meetups.", Kinds: eventOnly},

	{ID: "products", Label: "Products", Icon: "shopping-bag", Gradient: "from-orange-400 to-amber-600", Description: "Items for sale with prices.", Kinds: shopOnly, DefaultEnabled: true},
	{ID: "orders", Label: "Orders", Icon: "clipboard", Gradient: "from-sky-500 to-blue-600", Description: "Order form and status lookup.", Kinds: shopOnly, DefaultEnabled: true},
	{ID: "recipes", Label: "Recipes", Icon: "book-open", Gradient: "from-yellow-400 to-orange-500", Description: "Recipes and ingredient costing.", Kinds: shopOnly},
	{ID: "about", Label: "About", Icon: "info", Gradient: "from-stone-400 to-stone-600", Description: "The story behind the kitchen.", Kinds: shopOnly, DefaultEnabled: true},
	{ID: "pickup", Label: "Pickup", Icon: "truck", Gradient: "from-green-500 to-emerald-600", Description: "Pickup windows and locations.", Kinds: shopOnly, DefaultEnabled: true},
	{ID: "contact", Label: "Contact", Icon: "mail", Gradient: "from-indigo-400 to-blue-500", Description: "Contact form and social links.", Kinds: shopOnly, DefaultEnabled: true},
}
