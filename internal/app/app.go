package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	adminhandler "mealdash/internal/handlers/admin"
	authhandler "mealdash/internal/handlers/auth"
	browsehandler "mealdash/internal/handlers/browse"
	carthandler "mealdash/internal/handlers/cart"
	orderhandler "mealdash/internal/handlers/orders"
	adminservice "mealdash/internal/service/admin"
	"mealdash/pkg/lib/notice"
	"mealdash/pkg/lib/routeparser"
)

type SessionGuard interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// App dispatches route-style commands to the page handlers. Routes are
// the only command surface; protected routes are gated the way the
// original pages are.
type App struct {
	log     *slog.Logger
	session SessionGuard
	notices notice.Notifier
	out     io.Writer

	auth   *authhandler.Handler
	browse *browsehandler.Handler
	cart   *carthandler.Handler
	orders *orderhandler.Handler
	admin  *adminhandler.Handler
}

func New(
	log *slog.Logger,
	session SessionGuard,
	notices notice.Notifier,
	out io.Writer,
	auth *authhandler.Handler,
	browse *browsehandler.Handler,
	cart *carthandler.Handler,
	orders *orderhandler.Handler,
	admin *adminhandler.Handler,
) *App {
	return &App{
		log:     log,
		session: session,
		notices: notices,
		out:     out,
		auth:    auth,
		browse:  browse,
		cart:    cart,
		orders:  orders,
		admin:   admin,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	path := "/"
	if len(args) > 0 {
		path = args[0]
		args = args[1:]
	}

	route := routeparser.Parse(path)
	parts := route.Parts

	switch {
	case route.Len() == 0:
		a.browse.Home(ctx)

	case parts[0] == "restaurants" && route.Len() == 1:
		a.browse.Restaurants(ctx, strings.Join(args, " "))

	case parts[0] == "restaurants" && route.Len() == 2:
		id, err := route.Int(1)
		if err != nil {
			return a.usage("usage: /restaurants/{id} [category]")
		}
		category := ""
		if len(args) > 0 {
			category = args[0]
		}
		a.browse.RestaurantDetails(ctx, id, category)

	case parts[0] == "categories" && route.Len() == 2:
		id, err := route.Int(1)
		if err != nil {
			return a.usage("usage: /categories/{id}")
		}
		a.browse.Category(ctx, id)

	case parts[0] == "login" && route.Len() == 1:
		if len(args) != 2 {
			return a.usage("usage: /login <email> <password>")
		}
		a.auth.Login(ctx, args[0], args[1])

	case parts[0] == "register" && route.Len() == 1:
		if len(args) < 4 || len(args) > 5 {
			return a.usage("usage: /register <name> <email> <password> <confirm-password> [role]")
		}
		role := ""
		if len(args) == 5 {
			role = args[4]
		}
		a.auth.Register(ctx, args[0], args[1], args[2], args[3], role)

	case parts[0] == "logout" && route.Len() == 1:
		a.auth.Logout(ctx)

	case parts[0] == "cart":
		return a.runCart(ctx, route, args)

	case parts[0] == "checkout" && route.Len() == 1:
		if !a.requireAuth() {
			return nil
		}
		if len(args) < 1 {
			return a.usage("usage: /checkout <cod|online> [address] [notes]")
		}
		address, notes := "", ""
		if len(args) > 1 {
			address = args[1]
		}
		if len(args) > 2 {
			notes = strings.Join(args[2:], " ")
		}
		a.orders.Checkout(ctx, args[0], address, notes)

	case parts[0] == "orders" && route.Len() == 1:
		if !a.requireAuth() {
			return nil
		}
		a.orders.History(ctx)

	case parts[0] == "admin":
		return a.runAdmin(ctx, route, args)

	default:
		fmt.Fprintf(a.out, "Page not found: %s\n", route)
	}

	return nil
}

func (a *App) runCart(ctx context.Context, route routeparser.Route, args []string) error {
	switch {
	case route.Len() == 1:
		if !a.requireAuth() {
			return nil
		}
		a.cart.Show(ctx)

	// /cart/add is reachable without a session; the cart store
	// answers with the login-required notice itself.
	case route.Len() == 2 && route.At(1) == "add":
		menuItemId, quantity, err := idAndQuantity(args)
		if err != nil {
			return a.usage("usage: /cart/add <menu-item-id> <quantity>")
		}
		a.cart.Add(ctx, menuItemId, quantity)

	case route.Len() == 2 && route.At(1) == "update":
		if !a.requireAuth() {
			return nil
		}
		lineId, quantity, err := idAndQuantity(args)
		if err != nil {
			return a.usage("usage: /cart/update <line-id> <quantity>")
		}
		a.cart.Update(ctx, lineId, quantity)

	case route.Len() == 2 && route.At(1) == "remove":
		if !a.requireAuth() {
			return nil
		}
		if len(args) != 1 {
			return a.usage("usage: /cart/remove <line-id>")
		}
		lineId, err := strconv.Atoi(args[0])
		if err != nil {
			return a.usage("usage: /cart/remove <line-id>")
		}
		a.cart.Remove(ctx, lineId)

	default:
		fmt.Fprintf(a.out, "Page not found: %s\n", route)
	}

	return nil
}

func (a *App) runAdmin(ctx context.Context, route routeparser.Route, args []string) error {
	if !a.requireAdmin() {
		return nil
	}

	switch {
	case route.Len() == 2 && route.At(1) == "orders":
		a.admin.Orders(ctx)

	case route.Len() == 4 && route.At(1) == "orders" && route.At(3) == "status":
		id, err := route.Int(2)
		if err != nil || len(args) != 1 {
			return a.usage("usage: /admin/orders/{id}/status <status>")
		}
		a.admin.UpdateOrderStatus(ctx, id, args[0])

	case route.Len() == 2 && route.At(1) == "restaurants":
		a.admin.Restaurants(ctx)

	case route.Len() == 3 && route.At(1) == "restaurants" && route.At(2) == "create":
		form, err := restaurantForm(args)
		if err != nil {
			return a.usage("usage: /admin/restaurants/create <name> <address> <rating>")
		}
		a.admin.CreateRestaurant(ctx, form)

	case route.Len() == 4 && route.At(1) == "restaurants" && route.At(3) == "update":
		id, err := route.Int(2)
		if err != nil {
			return a.usage("usage: /admin/restaurants/{id}/update <name> <address> <rating>")
		}
		form, err := restaurantForm(args)
		if err != nil {
			return a.usage("usage: /admin/restaurants/{id}/update <name> <address> <rating>")
		}
		a.admin.UpdateRestaurant(ctx, id, form)

	case route.Len() == 4 && route.At(1) == "restaurants" && route.At(3) == "delete":
		id, err := route.Int(2)
		if err != nil {
			return a.usage("usage: /admin/restaurants/{id}/delete")
		}
		a.admin.DeleteRestaurant(ctx, id)

	case route.Len() == 2 && route.At(1) == "menu":
		a.admin.MenuItems(ctx)

	case route.Len() == 3 && route.At(1) == "menu" && route.At(2) == "create":
		form, err := menuItemForm(args)
		if err != nil {
			return a.usage("usage: /admin/menu/create <name> <price> <restaurant-id> <category-id> [description]")
		}
		a.admin.CreateMenuItem(ctx, form)

	case route.Len() == 4 && route.At(1) == "menu" && route.At(3) == "update":
		id, err := route.Int(2)
		if err != nil {
			return a.usage("usage: /admin/menu/{id}/update <name> <price> <restaurant-id> <category-id> [description]")
		}
		form, err := menuItemForm(args)
		if err != nil {
			return a.usage("usage: /admin/menu/{id}/update <name> <price> <restaurant-id> <category-id> [description]")
		}
		a.admin.UpdateMenuItem(ctx, id, form)

	case route.Len() == 4 && route.At(1) == "menu" && route.At(3) == "delete":
		id, err := route.Int(2)
		if err != nil {
			return a.usage("usage: /admin/menu/{id}/delete")
		}
		a.admin.DeleteMenuItem(ctx, id)

	default:
		fmt.Fprintf(a.out, "Page not found: %s\n", route)
	}

	return nil
}

func (a *App) requireAuth() bool {
	if a.session.IsAuthenticated() {
		return true
	}
	a.notices.Error("Please login to continue")
	return false
}

func (a *App) requireAdmin() bool {
	if !a.requireAuth() {
		return false
	}
	if a.session.IsAdmin() {
		return true
	}
	a.notices.Error("Admin access required")
	return false
}

func (a *App) usage(msg string) error {
	fmt.Fprintln(a.out, msg)
	return nil
}

func idAndQuantity(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected 2 arguments")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, err
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, err
	}
	return id, quantity, nil
}

func restaurantForm(args []string) (adminservice.RestaurantForm, error) {
	if len(args) != 3 {
		return adminservice.RestaurantForm{}, fmt.Errorf("expected 3 arguments")
	}
	rating, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return adminservice.RestaurantForm{}, err
	}
	return adminservice.RestaurantForm{
		Name:    args[0],
		Address: args[1],
		Rating:  rating,
	}, nil
}

func menuItemForm(args []string) (adminservice.MenuItemForm, error) {
	if len(args) < 4 {
		return adminservice.MenuItemForm{}, fmt.Errorf("expected at least 4 arguments")
	}
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return adminservice.MenuItemForm{}, err
	}
	restaurantId, err := strconv.Atoi(args[2])
	if err != nil {
		return adminservice.MenuItemForm{}, err
	}
	categoryId, err := strconv.Atoi(args[3])
	if err != nil {
		return adminservice.MenuItemForm{}, err
	}
	return adminservice.MenuItemForm{
		Name:         args[0],
		Price:        price,
		Description:  strings.Join(args[4:], " "),
		RestaurantId: restaurantId,
		CategoryId:   categoryId,
	}, nil
}
