package seed

import (
	"os"
	"time"

	"korvo/internal/domain/benefit"
	"korvo/internal/domain/business"
	"korvo/internal/pkg/errs"
	"korvo/internal/usecase/readmodel"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Seed is the session's starting data, loaded once at bootstrap from
// the catalog YAML file.
type Seed struct {
	Businesses   []*business.Business
	Discounts    []business.Discount
	Transactions []readmodel.ActivityEntryView
	Customers    []readmodel.CustomerView
	Rewards      []*benefit.Reward
	Promotions   []*benefit.Promotion
	Stats        readmodel.DashboardStats
}

type fileSchema struct {
	Businesses []struct {
		ID           int64  `yaml:"id"`
		Name         string `yaml:"name"`
		Address      string `yaml:"address"`
		Color        string `yaml:"color"`
		Cover        string `yaml:"cover"`
		Rate         string `yaml:"rate"`
		LastVisit    string `yaml:"last_visit"`
		PointBalance int    `yaml:"point_balance"`
		Stamps       int    `yaml:"stamps"`
		StampGoal    int    `yaml:"stamp_goal"`
		Rewards      []struct {
			ID   string `yaml:"id"`
			Name string `yaml:"name"`
			Cost int    `yaml:"cost"`
			Icon string `yaml:"icon"`
		} `yaml:"rewards"`
	} `yaml:"businesses"`
	Discounts []struct {
		Label string `yaml:"label"`
		Cost  int    `yaml:"cost"`
	} `yaml:"discounts"`
	Transactions []struct {
		ID     int64  `yaml:"id"`
		Date   string `yaml:"date"`
		Shop   string `yaml:"shop"`
		Amount string `yaml:"amount"`
		Type   string `yaml:"type"`
		Item   string `yaml:"item"`
	} `yaml:"transactions"`
	Customers []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Email       string `yaml:"email"`
		Phone       string `yaml:"phone"`
		Points      int    `yaml:"points"`
		Stamps      int    `yaml:"stamps"`
		TotalStamps int    `yaml:"total_stamps"`
		LastVisit   string `yaml:"last_visit"`
		JoinedAt    string `yaml:"joined_at"`
		TotalSpent  int    `yaml:"total_spent"`
	} `yaml:"customers"`
	AdminRewards []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Cost        int    `yaml:"cost"`
		Category    string `yaml:"category"`
		RedeemCount int    `yaml:"redeem_count"`
		CreatedAt   string `yaml:"created_at"`
	} `yaml:"admin_rewards"`
	Promotions []struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Type        string `yaml:"type"`
		Amount      int    `yaml:"amount"`
		StartDate   string `yaml:"start_date"`
		EndDate     string `yaml:"end_date"`
		Active      bool   `yaml:"active"`
	} `yaml:"promotions"`
	Stats struct {
		TotalPoints       int `yaml:"total_points"`
		PointsEarned      int `yaml:"points_earned"`
		PointsRedeemed    int `yaml:"points_redeemed"`
		ActiveCustomers   int `yaml:"active_customers"`
		TotalTransactions int `yaml:"total_transactions"`
		MonthlyRevenue    int `yaml:"monthly_revenue"`
		RewardsClaimed    int `yaml:"rewards_claimed"`
		RetentionRate     int `yaml:"retention_rate"`
	} `yaml:"stats"`
}

func Load(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read catalog seed")
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Seed, error) {
	var file fileSchema
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errs.Wrap(err, "failed to parse catalog seed")
	}

	out := &Seed{Stats: readmodel.DashboardStats(file.Stats)}

	for _, b := range file.Businesses {
		rewards := make([]business.Reward, 0, len(b.Rewards))
		for _, r := range b.Rewards {
			if r.Cost <= 0 {
				return nil, errs.Newf("business %d reward %q has non-positive cost", b.ID, r.Name)
			}
			rewards = append(rewards, business.Reward{ID: r.ID, Name: r.Name, Cost: r.Cost, Icon: r.Icon})
		}
		if b.PointBalance < 0 {
			return nil, errs.Newf("business %d has negative point balance", b.ID)
		}
		out.Businesses = append(out.Businesses, business.ReconstructBusiness(
			b.ID,
			b.Name, b.Address, b.Color, b.Cover, b.Rate, b.LastVisit,
			b.PointBalance, b.Stamps, b.StampGoal,
			rewards,
		))
	}

	for _, d := range file.Discounts {
		if d.Cost <= 0 {
			return nil, errs.Newf("discount %q has non-positive cost", d.Label)
		}
		out.Discounts = append(out.Discounts, business.Discount{Label: d.Label, Cost: d.Cost})
	}

	for _, t := range file.Transactions {
		out.Transactions = append(out.Transactions, readmodel.ActivityEntryView{
			DateName: t.Date,
			Shop:     t.Shop,
			Amount:   t.Amount,
			Type:     t.Type,
			Item:     t.Item,
		})
	}

	for _, c := range file.Customers {
		out.Customers = append(out.Customers, readmodel.CustomerView{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			Points:      c.Points,
			Stamps:      c.Stamps,
			TotalStamps: c.TotalStamps,
			LastVisit:   c.LastVisit,
			JoinedAt:    c.JoinedAt,
			TotalSpent:  c.TotalSpent,
		})
	}

	for _, r := range file.AdminRewards {
		createdAt, err := parseDate(r.CreatedAt)
		if err != nil {
			return nil, errs.Wrap(err, "invalid admin reward created_at")
		}
		out.Rewards = append(out.Rewards, benefit.ReconstructReward(
			uuid.New(), r.Name, r.Description, r.Cost, r.Category, true, r.RedeemCount, createdAt,
		))
	}

	for _, p := range file.Promotions {
		startDate, err := parseDate(p.StartDate)
		if err != nil {
			return nil, errs.Wrap(err, "invalid promotion start_date")
		}
		endDate, err := parseDate(p.EndDate)
		if err != nil {
			return nil, errs.Wrap(err, "invalid promotion end_date")
		}
		promo := benefit.ReconstructPromotion(
			uuid.New(), p.Title, p.Description,
			benefit.PromoType(p.Type), p.Amount,
			startDate, endDate, p.Active,
		)
		out.Promotions = append(out.Promotions, promo)
	}

	return out, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
