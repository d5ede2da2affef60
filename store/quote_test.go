package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hofix-app/hofix-api/schema"
)

type QuoteTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore

	requesterID primitive.ObjectID

	providerUserA primitive.ObjectID
	providerA     primitive.ObjectID
	providerUserB primitive.ObjectID
	providerB     primitive.ObjectID

	pendingProviderUser primitive.ObjectID
	pendingProvider     primitive.ObjectID
}

func NewQuoteTestSuite(connURI, dbName string) *QuoteTestSuite {
	return &QuoteTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *QuoteTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *QuoteTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	s.requesterID = primitive.NewObjectID()
	s.providerUserA = primitive.NewObjectID()
	s.providerA = primitive.NewObjectID()
	s.providerUserB = primitive.NewObjectID()
	s.providerB = primitive.NewObjectID()
	s.pendingProviderUser = primitive.NewObjectID()
	s.pendingProvider = primitive.NewObjectID()

	if _, err := s.testDatabase.Collection(schema.UserCollection).InsertMany(ctx, []interface{}{
		schema.User{
			ID:    s.requesterID,
			Name:  "Ravi",
			Email: "ravi@quotes.example.com",
			Role:  schema.RoleUser,
		},
		schema.User{
			ID:     s.providerUserA,
			Name:   "Asha",
			Email:  "asha@quotes.example.com",
			Phone:  "+911234567890",
			Role:   schema.RoleProvider,
			Rating: 4.6,
		},
		schema.User{
			ID:     s.providerUserB,
			Name:   "Binod",
			Email:  "binod@quotes.example.com",
			Role:   schema.RoleProvider,
			Rating: 4.1,
		},
		schema.User{
			ID:    s.pendingProviderUser,
			Name:  "Chand",
			Email: "chand@quotes.example.com",
			Role:  schema.RoleProvider,
		},
	}); err != nil {
		return err
	}

	if _, err := s.testDatabase.Collection(schema.ProviderCollection).InsertMany(ctx, []interface{}{
		schema.Provider{
			ID:                 s.providerA,
			UserID:             s.providerUserA,
			Skills:             []string{"plumbing"},
			Availability:       true,
			VerificationStatus: schema.VerificationVerified,
			DepositBalance:     1000,
		},
		schema.Provider{
			ID:                 s.providerB,
			UserID:             s.providerUserB,
			Skills:             []string{"plumbing"},
			Availability:       true,
			VerificationStatus: schema.VerificationVerified,
			DepositBalance:     800,
		},
		schema.Provider{
			ID:                 s.pendingProvider,
			UserID:             s.pendingProviderUser,
			Skills:             []string{"plumbing"},
			Availability:       true,
			VerificationStatus: schema.VerificationPending,
		},
	}); err != nil {
		return err
	}

	return nil
}

func (s *QuoteTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *QuoteTestSuite) provider(id primitive.ObjectID) *schema.Provider {
	provider, err := s.store.GetProvider(id)
	s.Require().NoError(err)
	return provider
}

func (s *QuoteTestSuite) providerUser(id primitive.ObjectID) *schema.User {
	user, err := s.store.GetUser(id)
	s.Require().NoError(err)
	return user
}

// newVerifiedProvider inserts a dedicated provider for tests that end with
// an accepted booking, since a busy provider cannot win another selection
func (s *QuoteTestSuite) newVerifiedProvider(name, email string) (*schema.Provider, *schema.User) {
	ctx := context.Background()

	user := schema.User{
		ID:     primitive.NewObjectID(),
		Name:   name,
		Email:  email,
		Role:   schema.RoleProvider,
		Rating: 4.0,
	}
	_, err := s.testDatabase.Collection(schema.UserCollection).InsertOne(ctx, user)
	s.Require().NoError(err)

	provider := schema.Provider{
		ID:                 primitive.NewObjectID(),
		UserID:             user.ID,
		Skills:             []string{"plumbing"},
		Availability:       true,
		VerificationStatus: schema.VerificationVerified,
		DepositBalance:     1000,
	}
	_, err = s.testDatabase.Collection(schema.ProviderCollection).InsertOne(ctx, provider)
	s.Require().NoError(err)

	return &provider, &user
}

func (s *QuoteTestSuite) newOpenRequest(category string) *schema.ServiceRequest {
	request, err := s.store.CreateServiceRequest(schema.ServiceRequest{
		UserID:          s.requesterID,
		ServiceCategory: category,
		Title:           "Test job",
		Description:     "Something is broken",
		LocationLat:     28.6315,
		LocationLon:     77.2167,
		LocationAddress: "Connaught Place, Delhi",
	})
	s.Require().NoError(err)
	return request
}

func (s *QuoteTestSuite) TestSubmitQuoteLifecycle() {
	request := s.newOpenRequest("plumbing")

	_, err := s.store.CreateProviderNotification(schema.ProviderNotification{
		ProviderID:       s.providerA,
		ServiceRequestID: request.ID,
		NotificationType: schema.NotificationNewRequest,
	})
	s.Require().NoError(err)

	quote, updated, err := s.store.SubmitQuote(request.ID, s.provider(s.providerA), s.providerUser(s.providerUserA),
		750, "2 hours", "Includes parts", nil)
	s.NoError(err)
	s.Equal(schema.QuoteSubmitted, quote.Status)
	s.Equal("INR", quote.Currency)
	s.Equal("Asha", quote.ProviderName, "snapshot of the account at submission")
	s.Equal(4.6, quote.ProviderRating)
	s.Equal(schema.RequestQuotesReceived, updated.Status)

	// the fan-out notification is considered acted upon
	var notification schema.ProviderNotification
	err = s.testDatabase.Collection(schema.ProviderNotificationCollection).
		FindOne(context.Background(), bson.M{
			"provider_id":        s.providerA,
			"service_request_id": request.ID,
		}).Decode(&notification)
	s.NoError(err)
	s.True(notification.IsRead)
	s.NotNil(notification.ReadAt)
}

func (s *QuoteTestSuite) TestSubmitQuoteDuplicate() {
	request := s.newOpenRequest("plumbing")

	_, _, err := s.store.SubmitQuote(request.ID, s.provider(s.providerA), s.providerUser(s.providerUserA),
		500, "1 hour", "", nil)
	s.Require().NoError(err)

	_, _, err = s.store.SubmitQuote(request.ID, s.provider(s.providerA), s.providerUser(s.providerUserA),
		450, "1 hour", "", nil)
	s.Equal(ErrQuoteAlreadySubmitted, err)
}

func (s *QuoteTestSuite) TestSubmitQuoteUnverifiedProvider() {
	request := s.newOpenRequest("plumbing")

	_, _, err := s.store.SubmitQuote(request.ID, s.provider(s.pendingProvider), s.providerUser(s.pendingProviderUser),
		500, "1 hour", "", nil)
	s.Equal(ErrProviderNotVerified, err)
}

func (s *QuoteTestSuite) TestSubmitQuoteAfterDeadline() {
	request := s.newOpenRequest("plumbing")

	_, err := s.testDatabase.Collection(schema.ServiceRequestCollection).UpdateOne(
		context.Background(),
		bson.M{"_id": request.ID},
		bson.M{"$set": bson.M{"quote_deadline": time.Now().UTC().Add(-time.Minute)}},
	)
	s.Require().NoError(err)

	_, _, err = s.store.SubmitQuote(request.ID, s.provider(s.providerA), s.providerUser(s.providerUserA),
		500, "1 hour", "", nil)
	s.Equal(ErrQuoteDeadlinePassed, err)
}

func (s *QuoteTestSuite) TestSubmitQuoteValidation() {
	request := s.newOpenRequest("plumbing")

	_, _, err := s.store.SubmitQuote(request.ID, s.provider(s.providerA), s.providerUser(s.providerUserA),
		0, "1 hour", "", nil)
	s.Equal(ErrInvalidPrice, err)

	_, _, err = s.store.SubmitQuote(request.ID, s.provider(s.providerA), s.providerUser(s.providerUserA),
		500, "  ", "", nil)
	s.Equal(ErrEmptyDuration, err)
}

func (s *QuoteTestSuite) TestSelectQuote() {
	request := s.newOpenRequest("plumbing")

	winner, winnerUser := s.newVerifiedProvider("Deepak", "deepak@quotes.example.com")
	loser, loserUser := s.newVerifiedProvider("Esha", "esha@quotes.example.com")

	for _, providerID := range []primitive.ObjectID{winner.ID, loser.ID} {
		_, err := s.store.CreateProviderNotification(schema.ProviderNotification{
			ProviderID:       providerID,
			ServiceRequestID: request.ID,
			NotificationType: schema.NotificationNewRequest,
		})
		s.Require().NoError(err)
	}

	winnerQuote, _, err := s.store.SubmitQuote(request.ID, winner, winnerUser, 750, "2 hours", "", nil)
	s.Require().NoError(err)
	loserQuote, _, err := s.store.SubmitQuote(request.ID, loser, loserUser, 650, "3 hours", "", nil)
	s.Require().NoError(err)

	result, err := s.store.SelectQuote(request.ID, winnerQuote.ID, s.requesterID)
	s.NoError(err)

	s.Equal(schema.RequestQuoteSelected, result.Request.Status)
	s.Require().NotNil(result.Request.SelectedQuote)
	s.Equal(winnerQuote.ID, *result.Request.SelectedQuote)
	s.Require().NotNil(result.Request.FinalBooking)
	s.Equal(result.Booking.ID, *result.Request.FinalBooking)

	s.Equal(schema.BookingAccepted, result.Booking.Status)
	s.Equal(750.0, result.Booking.Price)
	s.Equal(winner.ID, result.Booking.ProviderID)
	s.Equal("Deepak", result.Booking.ProviderName)
	s.Equal(schema.PaymentPending, result.Booking.PaymentStatus)
	s.False(result.Booking.ServiceID.IsZero(), "a catalog entry must be resolved")

	s.Equal(schema.QuoteSelected, result.Winner.Status)
	s.Equal([]primitive.ObjectID{loser.ID}, result.LoserProviderIDs)

	var reloadedLoser schema.ProviderQuote
	err = s.testDatabase.Collection(schema.ProviderQuoteCollection).
		FindOne(context.Background(), bson.M{"_id": loserQuote.ID}).Decode(&reloadedLoser)
	s.NoError(err)
	s.Equal(schema.QuoteRejected, reloadedLoser.Status)

	// only the winner keeps inbox entries for the request
	count, err := s.store.CountRequestNotifications(request.ID)
	s.NoError(err)
	var winnerNotifications []schema.ProviderNotification
	cursor, err2 := s.testDatabase.Collection(schema.ProviderNotificationCollection).
		Find(context.Background(), bson.M{"service_request_id": request.ID})
	s.NoError(err2)
	s.NoError(cursor.All(context.Background(), &winnerNotifications))
	s.Equal(int64(len(winnerNotifications)), count)
	for _, n := range winnerNotifications {
		s.Equal(winner.ID, n.ProviderID)
	}
}

func (s *QuoteTestSuite) TestSelectQuoteTwice() {
	request := s.newOpenRequest("plumbing")

	providerF, userF := s.newVerifiedProvider("Farid", "farid@quotes.example.com")
	providerG, userG := s.newVerifiedProvider("Gita", "gita@quotes.example.com")

	first, _, err := s.store.SubmitQuote(request.ID, providerF, userF, 700, "2 hours", "", nil)
	s.Require().NoError(err)
	second, _, err := s.store.SubmitQuote(request.ID, providerG, userG, 600, "2 hours", "", nil)
	s.Require().NoError(err)

	_, err = s.store.SelectQuote(request.ID, first.ID, s.requesterID)
	s.Require().NoError(err)

	_, err = s.store.SelectQuote(request.ID, second.ID, s.requesterID)
	s.Equal(ErrQuoteNotAvailable, err, "a closed request admits no second winner")

	fetched, err := s.store.GetServiceRequest(request.ID)
	s.NoError(err)
	s.Require().NotNil(fetched.SelectedQuote)
	s.Equal(first.ID, *fetched.SelectedQuote, "the first selection stands")
}

func (s *QuoteTestSuite) TestSelectQuoteNotOwner() {
	request := s.newOpenRequest("plumbing")

	quote, _, err := s.store.SubmitQuote(request.ID, s.provider(s.providerA), s.providerUser(s.providerUserA),
		700, "2 hours", "", nil)
	s.Require().NoError(err)

	_, err = s.store.SelectQuote(request.ID, quote.ID, s.providerUserA)
	s.Equal(ErrNotRequestOwner, err)
}

func (s *QuoteTestSuite) TestWithdrawQuoteAndResubmit() {
	request := s.newOpenRequest("plumbing")

	quote, _, err := s.store.SubmitQuote(request.ID, s.provider(s.providerA), s.providerUser(s.providerUserA),
		700, "2 hours", "", nil)
	s.Require().NoError(err)

	withdrawn, _, err := s.store.WithdrawQuote(request.ID, s.provider(s.providerA))
	s.NoError(err)
	s.Equal(quote.ID, withdrawn.ID)
	s.Equal(schema.QuoteCancelled, withdrawn.Status)

	// a cancelled quote does not block a fresh one
	again, _, err := s.store.SubmitQuote(request.ID, s.provider(s.providerA), s.providerUser(s.providerUserA),
		680, "2 hours", "", nil)
	s.NoError(err)
	s.NotEqual(quote.ID, again.ID)
	s.Equal(schema.QuoteSubmitted, again.Status)
}

func (s *QuoteTestSuite) TestWithdrawQuoteAfterSelection() {
	request := s.newOpenRequest("plumbing")

	provider, user := s.newVerifiedProvider("Hari", "hari@quotes.example.com")

	quote, _, err := s.store.SubmitQuote(request.ID, provider, user, 700, "2 hours", "", nil)
	s.Require().NoError(err)

	_, err = s.store.SelectQuote(request.ID, quote.ID, s.requesterID)
	s.Require().NoError(err)

	_, _, err = s.store.WithdrawQuote(request.ID, provider)
	s.Equal(ErrQuoteNotWithdrawable, err)
}

func (s *QuoteTestSuite) TestWithdrawQuoteWithoutQuote() {
	request := s.newOpenRequest("plumbing")

	_, _, err := s.store.WithdrawQuote(request.ID, s.provider(s.providerB))
	s.Equal(ErrQuoteNotFound, err)
}

func (s *QuoteTestSuite) TestExpireQuotes() {
	request := s.newOpenRequest("plumbing")

	quote, _, err := s.store.SubmitQuote(request.ID, s.provider(s.providerA), s.providerUser(s.providerUserA),
		700, "2 hours", "", nil)
	s.Require().NoError(err)

	_, err = s.testDatabase.Collection(schema.ProviderQuoteCollection).UpdateOne(
		context.Background(),
		bson.M{"_id": quote.ID},
		bson.M{"$set": bson.M{"expires_at": time.Now().UTC().Add(-time.Minute)}},
	)
	s.Require().NoError(err)

	count, err := s.store.ExpireQuotes(time.Now().UTC())
	s.NoError(err)
	s.GreaterOrEqual(count, int64(1))

	var reloaded schema.ProviderQuote
	err = s.testDatabase.Collection(schema.ProviderQuoteCollection).
		FindOne(context.Background(), bson.M{"_id": quote.ID}).Decode(&reloaded)
	s.NoError(err)
	s.Equal(schema.QuoteExpired, reloaded.Status)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestQuoteTestSuite(t *testing.T) {
	suite.Run(t, NewQuoteTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
