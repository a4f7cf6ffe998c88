package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"utsavia/client"
	"utsavia/config"
	"utsavia/models"
	"utsavia/services/auth"
	"utsavia/services/booking"
	"utsavia/services/catalog"
	"utsavia/services/vendor"
	"utsavia/session"
	"utsavia/utils"

	"github.com/go-redis/redis/v8"
)

const usage = `Usage: utsavia-client <command> [flags]

Commands:
  signup     -name -email -password          Create a vendor account
  signin     -email -password                Sign in to an existing account
  signout                                    Clear the stored session
  profile                                    Show the saved business profile
  profile-update  (see -help for flags)      Complete or edit the profile
  items                                      List your items
  item-add   -name -category -city -price [-description -image -image-url]
  item-delete -id                            Delete an item by id
  bookings   [-status pending|confirmed|cancelled]
  booking-confirm -id                        Confirm a pending booking
  booking-cancel  -id                        Cancel a booking
  upload     -file                           Upload an image, print hosted URL

Environment: UTSAVIA_SERVER overrides the API base URL.`

// app wires the SDK services behind the subcommands.
type app struct {
	store    session.Store
	auth     auth.AuthService
	profiles vendor.ProfileService
	catalog  catalog.CatalogService
	bookings booking.BookingService
	uploader client.Uploader
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	baseURL := config.AppConfig.APIBaseURL
	if env := os.Getenv("UTSAVIA_SERVER"); env != "" {
		baseURL = env
	}

	store, err := newSessionStore()
	if err != nil {
		fail(err)
	}

	api := client.New(baseURL, store, logger)
	a := &app{
		store:    store,
		auth:     &auth.DefaultAuthService{API: api, Store: store},
		profiles: &vendor.DefaultProfileService{API: api, Store: store},
		catalog:  &catalog.DefaultCatalogService{API: api, Store: store},
		bookings: &booking.DefaultBookingService{API: api},
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fail(err)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return a.signUp(ctx, args)
	case "signin":
		return a.signIn(ctx, args)
	case "signout":
		return a.auth.SignOut(ctx)
	case "profile":
		return a.showProfile(ctx)
	case "profile-update":
		return a.updateProfile(ctx, args)
	case "items":
		return a.listItems(ctx)
	case "item-add":
		return a.addItem(ctx, args)
	case "item-delete":
		return a.deleteItem(ctx, args)
	case "bookings":
		return a.listBookings(ctx, args)
	case "booking-confirm":
		return a.confirmBooking(ctx, args)
	case "booking-cancel":
		return a.cancelBooking(ctx, args)
	case "upload":
		return a.upload(ctx, args)
	case "help", "-h", "--help":
		fmt.Println(usage)
		return nil
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) signUp(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "Your name")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password (min 6 characters)")
	fs.Parse(args)

	resp, err := a.auth.SignUp(ctx, models.SignUpRequest{Name: *name, Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	fmt.Println("Signed up as vendor", resp.VendorID)
	fmt.Println("Next: complete your business profile with `profile-update`.")
	return nil
}

func (a *app) signIn(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signin", flag.ExitOnError)
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password")
	fs.Parse(args)

	resp, err := a.auth.SignIn(ctx, models.SignInRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	fmt.Println("Signed in as vendor", resp.VendorID)
	return nil
}

func (a *app) showProfile(ctx context.Context) error {
	profile, err := a.profiles.GetProfile(ctx)
	if err != nil {
		return err
	}
	return printJSON(profile)
}

func (a *app) updateProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile-update", flag.ExitOnError)
	company := fs.String("company", "", "Company name")
	phone := fs.String("phone", "", "Phone number")
	address := fs.String("address", "", "Business address")
	location := fs.String("location", "", "City / service location")
	mode := fs.String("mode", models.PaymentModeUPI, "Payment mode: upi or bank")
	upiID := fs.String("upi", "", "UPI id (mode=upi)")
	account := fs.String("account", "", "Bank account number (mode=bank)")
	ifsc := fs.String("ifsc", "", "IFSC code (mode=bank)")
	holder := fs.String("holder", "", "Account holder name (mode=bank)")
	fs.Parse(args)

	profile := models.Profile{
		CompanyName: *company,
		Phone:       *phone,
		Address:     *address,
		Location:    *location,
	}
	switch *mode {
	case models.PaymentModeBank:
		profile.Payment = models.BankPayment(*account, *ifsc, *holder)
	default:
		profile.Payment = models.UPIPayment(*upiID)
	}

	message, err := a.profiles.UpdateProfile(ctx, profile)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (a *app) listItems(ctx context.Context) error {
	items, err := a.catalog.FetchItems(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No items found.")
		return nil
	}
	return printJSON(items)
}

func (a *app) addItem(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("item-add", flag.ExitOnError)
	name := fs.String("name", "", "Item name")
	description := fs.String("description", "", "Item description")
	category := fs.String("category", "", "Category, e.g. Birthday")
	city := fs.String("city", "", "City the price applies to")
	price := fs.String("price", "", "Price in the given city")
	image := fs.String("image", "", "Local image file to upload first")
	imageURL := fs.String("image-url", "", "Already-hosted image URL")
	fs.Parse(args)

	hostedURL := *imageURL
	if *image != "" {
		uploaded, err := a.uploadImage(ctx, *image)
		if err != nil {
			return err
		}
		hostedURL = uploaded
		fmt.Println("Image uploaded:", hostedURL)
	}

	item, err := a.catalog.AddItem(ctx, catalog.AddItemInput{
		Name:        *name,
		Description: *description,
		Category:    *category,
		City:        *city,
		Price:       *price,
		ImageURL:    hostedURL,
	})
	if err != nil {
		return err
	}
	fmt.Println("Item added with id", item.ID)
	return nil
}

func (a *app) deleteItem(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("item-delete", flag.ExitOnError)
	id := fs.String("id", "", "Item id")
	fs.Parse(args)

	if err := a.catalog.DeleteItem(ctx, *id); err != nil {
		return err
	}
	fmt.Println("Item deleted.")
	return nil
}

func (a *app) listBookings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ExitOnError)
	status := fs.String("status", "", "Filter: pending, confirmed or cancelled")
	fs.Parse(args)

	envelope, err := a.bookings.FetchBookings(ctx)
	if err != nil {
		return err
	}
	if envelope.HasNewBookings {
		fmt.Println("You have new bookings!")
	}

	switch *status {
	case models.BookingPending:
		return printJSON(envelope.Pending)
	case models.BookingConfirmed:
		return printJSON(envelope.Confirmed)
	case models.BookingCancelled:
		return printJSON(envelope.Cancelled)
	case "":
		return printJSON(envelope)
	default:
		return utils.ValidationError{Field: "status", Message: "must be pending, confirmed or cancelled"}
	}
}

func (a *app) confirmBooking(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("booking-confirm", flag.ExitOnError)
	id := fs.String("id", "", "Booking id")
	fs.Parse(args)

	b, err := a.bookings.ConfirmBooking(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("Booking %s is now %s.\n", b.ID, b.Status)
	return nil
}

func (a *app) cancelBooking(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("booking-cancel", flag.ExitOnError)
	id := fs.String("id", "", "Booking id")
	fs.Parse(args)

	b, err := a.bookings.CancelBooking(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("Booking %s is now %s.\n", b.ID, b.Status)
	return nil
}

func (a *app) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	file := fs.String("file", "", "Local image file")
	fs.Parse(args)

	url, err := a.uploadImage(ctx, *file)
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}

// uploadImage lazily initializes the Cloudinary uploader; most commands never
// need it.
func (a *app) uploadImage(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", utils.ValidationError{Field: "file", Message: "an image file is required"}
	}
	if a.uploader == nil {
		uploader, err := client.NewCloudinaryUploader()
		if err != nil {
			return "", err
		}
		a.uploader = uploader
	}
	return a.uploader.UploadImage(ctx, path)
}

func newSessionStore() (session.Store, error) {
	switch config.AppConfig.SessionBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisSessionDB,
		})
		host, _ := os.Hostname()
		return session.NewRedisStore(rdb, host), nil
	default:
		return session.NewFileStore(config.AppConfig.SessionFile)
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func fail(err error) {
	if utils.IsAuthError(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, "Run `signin` to start a new session.")
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}
