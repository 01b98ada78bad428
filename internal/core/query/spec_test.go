package query_test

import (
	"strings"
	"testing"

	"github.com/frahmantamala/company-directory/internal/core/query"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func TestQuery(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Query Suite")
}

type team struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
	City string
	Tags map[string]interface{} `gorm:"type:jsonb;serializer:json"`
}

func (team) TableName() string { return "teams" }

type member struct {
	ID     int64 `gorm:"primaryKey"`
	Name   string
	Score  float64
	TeamID *int64
}

func (member) TableName() string { return "members" }

var teamJoin = query.Join{Name: "team", Table: "teams", On: "teams.id = members.team_id"}

func inCity(city string) query.Predicate {
	return func(b *query.Builder) clause.Expression {
		b.Join(teamJoin)
		return query.Equals(query.Col("teams", "city"), city)
	}
}

func inTeam(name string) query.Predicate {
	return func(b *query.Builder) clause.Expression {
		b.Join(teamJoin)
		return query.Equals(query.Col("teams", "name"), name)
	}
}

func nameContains(s string) query.Predicate {
	return func(b *query.Builder) clause.Expression {
		return query.ContainsFold(query.Col("members", "name"), s)
	}
}

var _ = Describe("Spec", func() {
	var db *gorm.DB

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		Expect(db.AutoMigrate(&team{}, &member{})).To(Succeed())

		red := team{Name: "red", City: "Oslo", Tags: map[string]interface{}{"league": "north"}}
		blue := team{Name: "blue", City: "Lima", Tags: map[string]interface{}{"league": "south"}}
		Expect(db.Create(&red).Error).To(Succeed())
		Expect(db.Create(&blue).Error).To(Succeed())

		Expect(db.Create(&[]member{
			{Name: "Ann", Score: 10, TeamID: &red.ID},
			{Name: "anneliese", Score: 20, TeamID: &red.ID},
			{Name: "Bo", Score: 30, TeamID: &blue.ID},
			{Name: "Cy_x", Score: 40},
			{Name: "Élise", Score: 50},
		}).Error).To(Succeed())
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	It("treats an empty spec as match-all", func() {
		var got []member
		Expect(query.Where().Apply(db.Model(&member{})).Find(&got).Error).To(Succeed())
		Expect(got).To(HaveLen(5))
	})

	It("drops nil predicates", func() {
		spec := query.Where(nil, nameContains("ann"), nil)
		Expect(spec.Len()).To(Equal(1))

		var got []member
		Expect(spec.Apply(db.Model(&member{})).Find(&got).Error).To(Succeed())
		Expect(got).To(HaveLen(2))
	})

	It("requests a shared join only once", func() {
		spec := query.Where(inCity("Oslo"), inTeam("red"))
		joins, exprs := spec.Build("sqlite")
		Expect(joins).To(HaveLen(1))
		Expect(exprs).To(HaveLen(2))

		stmt := spec.Apply(db.Session(&gorm.Session{DryRun: true}).Model(&member{})).Find(&[]member{}).Statement
		Expect(strings.Count(stmt.SQL.String(), "JOIN teams")).To(Equal(1))

		var got []member
		Expect(spec.Apply(db.Model(&member{})).Find(&got).Error).To(Succeed())
		Expect(got).To(HaveLen(2))
	})

	It("combines predicates with AND", func() {
		spec := query.Where(inCity("Oslo"), nameContains("liese"))

		var got []member
		Expect(spec.Apply(db.Model(&member{})).Find(&got).Error).To(Succeed())
		Expect(got).To(HaveLen(1))
		Expect(got[0].Name).To(Equal("anneliese"))
	})

	It("gives the same count as the row query", func() {
		spec := query.Where(inTeam("red"))

		var rows []member
		Expect(spec.Apply(db.Model(&member{})).Find(&rows).Error).To(Succeed())

		var total int64
		Expect(spec.Apply(db.Model(&member{})).Count(&total).Error).To(Succeed())
		Expect(total).To(BeEquivalentTo(len(rows)))
	})

	It("keeps required joins even without predicates", func() {
		spec := query.Where().Require(teamJoin)

		var total int64
		Expect(spec.Apply(db.Model(&member{})).Count(&total).Error).To(Succeed())
		Expect(total).To(BeEquivalentTo(3))
	})

	It("matches LIKE wildcards literally", func() {
		var got []member
		Expect(query.Where(nameContains("y_")).Apply(db.Model(&member{})).Find(&got).Error).To(Succeed())
		Expect(got).To(HaveLen(1))

		var none []member
		Expect(query.Where(nameContains("%")).Apply(db.Model(&member{})).Find(&none).Error).To(Succeed())
		Expect(none).To(BeEmpty())
	})

	It("folds case on both sides in the database", func() {
		var got []member
		Expect(query.Where(nameContains("ÉLISE")).Apply(db.Model(&member{})).Find(&got).Error).To(Succeed())
		Expect(got).To(HaveLen(1))
		Expect(got[0].Name).To(Equal("Élise"))

		exact := func(b *query.Builder) clause.Expression {
			return query.EqualsFold(query.Col("members", "name"), "ÉLISE")
		}
		got = nil
		Expect(query.Where(exact).Apply(db.Model(&member{})).Find(&got).Error).To(Succeed())
		Expect(got).To(HaveLen(1))
	})

	It("looks up attribute bag keys at query time", func() {
		bag := func(b *query.Builder) clause.Expression {
			return query.AttributeEquals(b.Dialect(), query.Col("teams", "tags"), "league", "south")
		}

		var got []team
		Expect(query.Where(bag).Apply(db.Model(&team{})).Find(&got).Error).To(Succeed())
		Expect(got).To(HaveLen(1))
		Expect(got[0].Name).To(Equal("blue"))
	})

	It("applies ordering and page windows", func() {
		by, err := query.OrderBy([]query.Order{query.DescBy("score")},
			query.Fields(map[string]clause.Column{"score": query.Col("members", "score")}), nil)
		Expect(err).NotTo(HaveOccurred())

		p := query.NewPageable(1, 4)
		var got []member
		Expect(p.Window(query.Ordered(db.Model(&member{}), by)).Find(&got).Error).To(Succeed())
		Expect(got).To(HaveLen(1))
		Expect(got[0].Name).To(Equal("Ann"))
	})
})
