package studio

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	orderModel "fitstudio_backend/internals/features/finance/orders/model"
	orderRepository "fitstudio_backend/internals/features/finance/orders/repository"
	paymentModel "fitstudio_backend/internals/features/finance/payments/model"
	attendanceModel "fitstudio_backend/internals/features/studio/attendance/model"
	classModel "fitstudio_backend/internals/features/studio/classes/model"
	clientModel "fitstudio_backend/internals/features/studio/clients/model"
	courseModel "fitstudio_backend/internals/features/studio/courses/model"
	enquiryModel "fitstudio_backend/internals/features/studio/enquiries/model"
	helper "fitstudio_backend/internals/helpers"
)

//go:embed data_studio.json
var sampleJSON []byte

const sampleOrders = 20

type clientSeed struct {
	clientModel.ClientModel
	DaysAgo int `json:"days_ago"`
}

type courseSeed struct {
	courseModel.CourseModel
	DaysAgo int `json:"days_ago"`
}

type enquirySeed struct {
	enquiryModel.EnquiryModel
	DaysAgo        int `json:"days_ago"`
	FollowUpInDays int `json:"follow_up_in_days"`
}

type sampleData struct {
	Clients   []clientSeed  `json:"clients"`
	Courses   []courseSeed  `json:"courses"`
	Enquiries []enquirySeed `json:"enquiries"`
}

var weekdays = map[string]int{
	"Monday": 0, "Tuesday": 1, "Wednesday": 2, "Thursday": 3,
	"Friday": 4, "Saturday": 5, "Sunday": 6,
}

// Seeder fills an empty database with a month of studio activity.
type Seeder struct {
	db  *gorm.DB
	log *zap.Logger
	rnd *rand.Rand
	now time.Time
}

func NewSeeder(db *gorm.DB, log *zap.Logger) *Seeder {
	return &Seeder{
		db:  db,
		log: log.Named("seed"),
		rnd: rand.New(rand.NewPCG(2024, 7)),
		now: time.Now().UTC(),
	}
}

// Seed is a no-op when clients already exist.
func (s *Seeder) Seed(ctx context.Context) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&clientModel.ClientModel{}).Count(&n).Error; err != nil {
		return fmt.Errorf("count clients: %w", err)
	}
	if n > 0 {
		s.log.Info("sample data skipped, clients already present", zap.Int64("clients", n))
		return nil
	}

	var data sampleData
	if err := sonic.Unmarshal(sampleJSON, &data); err != nil {
		return fmt.Errorf("decode sample data: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		clients, err := s.seedClients(tx, data.Clients)
		if err != nil {
			return err
		}
		courses, err := s.seedCourses(tx, data.Courses)
		if err != nil {
			return err
		}
		if err := s.seedOrders(ctx, tx, clients, courses); err != nil {
			return err
		}
		if err := s.seedClassesAndAttendance(tx, clients, courses); err != nil {
			return err
		}
		return s.seedEnquiries(tx, data.Enquiries)
	})
}

func (s *Seeder) daysAgo(n int) time.Time {
	return s.now.AddDate(0, 0, -n)
}

func (s *Seeder) seedClients(tx *gorm.DB, seeds []clientSeed) ([]clientModel.ClientModel, error) {
	out := make([]clientModel.ClientModel, 0, len(seeds))
	for _, cs := range seeds {
		c := cs.ClientModel
		c.CreatedAt = s.daysAgo(cs.DaysAgo)
		c.UpdatedAt = s.now
		if err := tx.Create(&c).Error; err != nil {
			return nil, fmt.Errorf("insert client %s: %w", c.Email, err)
		}
		out = append(out, c)
	}
	s.log.Info("clients inserted", zap.Int("count", len(out)))
	return out, nil
}

func (s *Seeder) seedCourses(tx *gorm.DB, seeds []courseSeed) ([]courseModel.CourseModel, error) {
	out := make([]courseModel.CourseModel, 0, len(seeds))
	for _, cs := range seeds {
		c := cs.CourseModel
		c.CreatedAt = s.daysAgo(cs.DaysAgo)
		c.UpdatedAt = s.now
		if err := tx.Create(&c).Error; err != nil {
			return nil, fmt.Errorf("insert course %s: %w", c.Name, err)
		}
		out = append(out, c)
	}
	s.log.Info("courses inserted", zap.Int("count", len(out)))
	return out, nil
}

func (s *Seeder) pick(options ...string) string {
	return options[s.rnd.IntN(len(options))]
}

func (s *Seeder) discount() float64 {
	if s.rnd.Float64() > 0.7 {
		return float64(s.rnd.IntN(501))
	}
	return 0
}

// seedOrders draws order numbers from the live sequence so later orders
// continue after the sample ones.
func (s *Seeder) seedOrders(ctx context.Context, tx *gorm.DB, clients []clientModel.ClientModel, courses []courseModel.CourseModel) error {
	orders := orderRepository.NewOrderRepository(tx)
	var payments int

	for i := 0; i < sampleOrders; i++ {
		client := clients[s.rnd.IntN(len(clients))]
		course := courses[s.rnd.IntN(len(courses))]

		number, err := orders.NextOrderNumber(ctx)
		if err != nil {
			return err
		}

		amount := course.PricePerSession * float64(1+s.rnd.IntN(12))
		discount := s.discount()
		created := s.daysAgo(1 + s.rnd.IntN(60))
		notes := fmt.Sprintf("Order for %s - %s", course.Name, s.pick("Monthly package", "Quarterly package", "Single session"))
		meta := helper.Attributes{"source": "website"}
		if campaign := s.pick("summer", "new_year", "referral", ""); campaign != "" {
			meta["campaign"] = campaign
		}

		o := orderModel.OrderModel{
			OrderNumber:     number,
			ClientID:        client.ID,
			CourseID:        course.ID,
			ServiceName:     course.Name,
			Amount:          amount,
			Currency:        orderModel.DefaultCurrency,
			Status:          orderModel.OrderStatus(s.pick("pending", "confirmed", "cancelled")),
			PaymentStatus:   orderModel.OrderPaymentStatus(s.pick("unpaid", "paid", "partial")),
			DiscountApplied: discount,
			FinalAmount:     amount - discount,
			Notes:           &notes,
			Metadata:        meta,
			CreatedAt:       created,
			UpdatedAt:       s.daysAgo(s.rnd.IntN(31)),
		}
		if s.rnd.Float64() > 0.3 {
			method := s.pick("cash", "card", "upi", "bank_transfer")
			o.PaymentMethod = &method
		}
		if err := orders.Create(ctx, &o); err != nil {
			return fmt.Errorf("insert order %s: %w", number, err)
		}

		p, ok := s.paymentFor(i, &o)
		if !ok {
			continue
		}
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("insert payment for %s: %w", number, err)
		}
		payments++
	}

	s.log.Info("orders inserted", zap.Int("count", sampleOrders), zap.Int("payments", payments))
	return nil
}

// paymentFor: settled orders get a completed payment (half the amount when
// partial); the first few unpaid orders get a pending one.
func (s *Seeder) paymentFor(i int, o *orderModel.OrderModel) (*paymentModel.PaymentModel, bool) {
	p := &paymentModel.PaymentModel{
		OrderID:   o.ID,
		ClientID:  o.ClientID,
		Currency:  o.Currency,
		CreatedAt: o.CreatedAt,
	}

	switch o.PaymentStatus {
	case orderModel.OrderPaymentPaid, orderModel.OrderPaymentPartial:
		p.Amount = o.FinalAmount
		if o.PaymentStatus == orderModel.OrderPaymentPartial {
			p.Amount = o.FinalAmount * 0.5
		}
		p.PaymentMethod = paymentModel.PaymentMethodCash
		if o.PaymentMethod != nil {
			p.PaymentMethod = paymentModel.PaymentMethod(*o.PaymentMethod)
		}
		txn := fmt.Sprintf("TXN%d", 100000+s.rnd.IntN(900000))
		notes := "Payment processed successfully"
		p.TransactionID = &txn
		p.Notes = &notes
		p.GatewayResponse = helper.Attributes{"status": "success", "gateway": "razorpay"}
		p.Status = paymentModel.PaymentStatusCompleted
		p.PaymentDate = o.CreatedAt.AddDate(0, 0, s.rnd.IntN(6))
		return p, true

	case orderModel.OrderPaymentUnpaid:
		if i >= 5 {
			return nil, false
		}
		p.Amount = o.FinalAmount
		p.PaymentMethod = paymentModel.PaymentMethodOnline
		p.Status = paymentModel.PaymentStatusPending
		p.PaymentDate = o.CreatedAt
		return p, true
	}
	return nil, false
}

func (s *Seeder) seedClassesAndAttendance(tx *gorm.DB, clients []clientModel.ClientModel, courses []courseModel.CourseModel) error {
	var classes, records int
	for _, course := range courses {
		for week := 0; week < 4; week++ {
			for _, slot := range course.Schedule {
				date := s.daysAgo(week * 7)
				if offset, ok := weekdays[slot.Day]; ok {
					date = s.daysAgo(28-week*7).AddDate(0, 0, offset)
				}

				status := classModel.ClassStatusScheduled
				if date.Before(s.now) {
					status = classModel.ClassStatusCompleted
				}
				cl := classModel.ClassModel{
					CourseID:        course.ID,
					Name:            fmt.Sprintf("%s - %s", course.Name, slot.Day),
					Instructor:      course.Instructor,
					Date:            date,
					StartTime:       slot.Time,
					DurationMinutes: slot.Duration,
					Capacity:        course.Capacity,
					EnrolledCount:   5 + s.rnd.IntN(course.Capacity-4),
					Status:          status,
					CreatedAt:       date.AddDate(0, 0, -7),
					UpdatedAt:       date,
				}
				if err := tx.Create(&cl).Error; err != nil {
					return fmt.Errorf("insert class %s: %w", cl.Name, err)
				}
				classes++

				if status != classModel.ClassStatusCompleted {
					continue
				}
				n, err := s.seedAttendance(tx, &cl, clients)
				if err != nil {
					return err
				}
				records += n
			}
		}
	}
	s.log.Info("classes inserted", zap.Int("count", classes), zap.Int("attendance", records))
	return nil
}

func (s *Seeder) seedAttendance(tx *gorm.DB, cl *classModel.ClassModel, clients []clientModel.ClientModel) (int, error) {
	n := min(len(clients), cl.EnrolledCount)
	perm := s.rnd.Perm(len(clients))[:n]

	for _, idx := range perm {
		status := attendanceModel.AttendancePresent
		if s.rnd.Float64() > 0.1 {
			status = attendanceModel.AttendanceStatus(s.pick("present", "absent", "cancelled"))
		}
		checkIn := cl.Date.Add(time.Duration(s.rnd.IntN(21)-5) * time.Minute)
		a := attendanceModel.AttendanceModel{
			ClientID:    clients[idx].ID,
			ClassID:     cl.ID,
			CourseID:    cl.CourseID,
			Date:        cl.Date,
			Status:      status,
			CheckInTime: &checkIn,
			CreatedAt:   cl.Date,
		}
		if s.rnd.Float64() > 0.2 {
			out := cl.Date.Add(time.Duration(cl.DurationMinutes+s.rnd.IntN(31)-10) * time.Minute)
			a.CheckOutTime = &out
		}
		if note := s.pick("Great session!", "Felt challenging", "Enjoyed the class", ""); note != "" {
			a.Notes = &note
		}
		if err := tx.Create(&a).Error; err != nil {
			return 0, fmt.Errorf("insert attendance for class %s: %w", cl.ID, err)
		}
	}
	return n, nil
}

func (s *Seeder) seedEnquiries(tx *gorm.DB, seeds []enquirySeed) error {
	for _, es := range seeds {
		e := es.EnquiryModel
		e.CreatedAt = s.daysAgo(es.DaysAgo)
		e.UpdatedAt = e.CreatedAt
		if es.FollowUpInDays > 0 {
			follow := s.now.AddDate(0, 0, es.FollowUpInDays)
			e.FollowUpDate = &follow
		}
		if err := tx.Create(&e).Error; err != nil {
			return fmt.Errorf("insert enquiry from %s: %w", e.Email, err)
		}
	}
	s.log.Info("enquiries inserted", zap.Int("count", len(seeds)))
	return nil
}
