package reports

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"kiosk-server/models"
)

const topProductsQuery = `
	SELECT product_name,
	       SUM(quantity) AS total_quantity,
	       SUM(total) AS total_sales
	FROM sales
	WHERE created_at >= ? AND created_at < ?
	GROUP BY product_name
	ORDER BY total_quantity DESC
	LIMIT 3
`

const dailyRevenueQuery = `
	SELECT COALESCE(SUM(total), 0) AS daily_revenue,
	       COUNT(DISTINCT order_id) AS total_orders
	FROM sales
	WHERE created_at >= ? AND created_at < ?
`

// Generator 基于销售台账的只读聚合，自身无副作用，
// 是否广播或渲染由调用方决定
type Generator struct {
	db  *sql.DB
	loc *time.Location
}

func NewGenerator(db *sql.DB, loc *time.Location) *Generator {
	return &Generator{db: db, loc: loc}
}

// Build 统计报表时区内"今天"的销售数据
func (g *Generator) Build() (*models.DailyReport, error) {
	start, end := dayBounds(time.Now(), g.loc)

	rows, err := g.db.Query(topProductsQuery, start, end)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {

		}
	}(rows)

	topProducts := []models.ProductSales{}
	for rows.Next() {
		var p models.ProductSales
		if err := rows.Scan(&p.ProductName, &p.TotalQuantity, &p.TotalSales); err != nil {
			return nil, err
		}
		topProducts = append(topProducts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	report := &models.DailyReport{
		TopProducts: topProducts,
		ReportDate:  start.Format("02/01/2006"),
	}

	err = g.db.QueryRow(dailyRevenueQuery, start, end).
		Scan(&report.DailyRevenue, &report.TotalOrders)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// Generate 返回格式化后的日报文本，出错时调用方按"报表不可用"处理
func (g *Generator) Generate() (string, error) {
	report, err := g.Build()
	if err != nil {
		return "", err
	}
	return formatReport(report), nil
}

func formatReport(r *models.DailyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 *Daily Report - %s*\n\n", r.ReportDate)
	fmt.Fprintf(&b, "💰 *Total revenue:* %s ILS\n", r.DailyRevenue.StringFixed(2))
	fmt.Fprintf(&b, "🛒 *Total orders:* %d\n\n", r.TotalOrders)
	b.WriteString("🏆 *Top 3 best sellers:*\n\n")

	if len(r.TopProducts) == 0 {
		b.WriteString("No sales today 😔")
		return b.String()
	}

	for i, p := range r.TopProducts {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, p.ProductName)
		fmt.Fprintf(&b, "   Quantity: %d units\n", p.TotalQuantity)
		fmt.Fprintf(&b, "   Revenue: %s ILS\n\n", p.TotalSales.StringFixed(2))
	}
	return b.String()
}

// WhatsAppURL 生成发送报表用的 wa.me 链接
func WhatsAppURL(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}

func dayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
