package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aurora/telemetry"
)

const (
	// History buffer size (number of telemetry windows to keep)
	trendHistorySize = 120

	// Line series indices
	seriesOpacity     = 0
	seriesOpacityP10  = 1
	seriesLineAlpha   = 2
	seriesConnections = 3
	seriesExpired     = 4
	numSeries         = 5
)

// Fraction series share the left axis, count series the right.
var (
	fractionSeries = []int{seriesOpacity, seriesOpacityP10, seriesLineAlpha}
	countSeries    = []int{seriesConnections, seriesExpired}
)

var (
	colorTrendTitle = rl.Color{R: 173, G: 216, B: 230, A: 255}
	colorGraphBg    = rl.Color{R: 8, G: 20, B: 34, A: 255}
	colorGraphGrid  = rl.Color{R: 30, G: 50, B: 70, A: 255}
)

// TrendPanel graphs field telemetry over the most recent windows.
type TrendPanel struct {
	panelWidth  int32
	panelHeight int32
	panelX      int32
	panelY      int32

	// Ring buffers, one per series
	history      [numSeries][]float64
	historyIndex int
	historyCount int

	seriesVisible [numSeries]bool
	seriesNames   [numSeries]string
	seriesColors  [numSeries]rl.Color
}

// NewTrendPanel creates a trend panel along the bottom of the screen.
func NewTrendPanel(screenWidth, screenHeight int32) *TrendPanel {
	p := &TrendPanel{panelHeight: 180}
	for i := 0; i < numSeries; i++ {
		p.history[i] = make([]float64, trendHistorySize)
	}

	p.seriesVisible = [numSeries]bool{true, false, true, true, false}
	p.seriesNames = [numSeries]string{"Opacity", "Opacity p10", "Line alpha", "Lines", "Expired"}
	p.seriesColors = [numSeries]rl.Color{
		{R: 173, G: 216, B: 230, A: 255},
		{R: 100, G: 140, B: 170, A: 255},
		{R: 0, G: 123, B: 255, A: 255},
		{R: 40, G: 167, B: 69, A: 255},
		{R: 255, G: 150, B: 80, A: 255},
	}

	p.Resize(screenWidth, screenHeight)
	return p
}

// Resize updates panel dimensions when the window is resized.
func (p *TrendPanel) Resize(screenWidth, screenHeight int32) {
	p.panelWidth = screenWidth - 20
	if p.panelWidth < 400 {
		p.panelWidth = 400
	}
	p.panelX = 10
	p.panelY = screenHeight - p.panelHeight - 40
}

// Record appends one telemetry window to the history.
func (p *TrendPanel) Record(ws telemetry.WindowStats) {
	idx := p.historyIndex

	p.history[seriesOpacity][idx] = ws.OpacityMean
	p.history[seriesOpacityP10][idx] = ws.OpacityP10
	p.history[seriesLineAlpha][idx] = ws.LineAlphaMean
	p.history[seriesConnections][idx] = ws.ConnectionsMean
	p.history[seriesExpired][idx] = float64(ws.Expired)

	p.historyIndex = (p.historyIndex + 1) % trendHistorySize
	if p.historyCount < trendHistorySize {
		p.historyCount++
	}
}

// Len returns the number of recorded windows.
func (p *TrendPanel) Len() int {
	return p.historyCount
}

// Toggle flips the visibility of one series.
func (p *TrendPanel) Toggle(series int) {
	if series >= 0 && series < numSeries {
		p.seriesVisible[series] = !p.seriesVisible[series]
	}
}

// value returns the i-th oldest recorded value of a series.
func (p *TrendPanel) value(series, i int) float64 {
	idx := (p.historyIndex - p.historyCount + i + trendHistorySize) % trendHistorySize
	return p.history[series][idx]
}

// HandleInput processes mouse clicks for legend toggling.
func (p *TrendPanel) HandleInput() {
	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		return
	}

	mx := rl.GetMouseX()
	my := rl.GetMouseY()

	legendY := p.panelY + p.panelHeight - 24
	legendX := p.panelX + 10

	for i := 0; i < numSeries; i++ {
		itemX := legendX + int32(i)*110
		if mx >= itemX && mx < itemX+105 && my >= legendY && my < legendY+18 {
			p.Toggle(i)
			return
		}
	}
}

// Draw renders the trend panel.
func (p *TrendPanel) Draw() {
	rl.DrawRectangle(p.panelX, p.panelY, p.panelWidth, p.panelHeight, ColorPanelBg)
	rl.DrawRectangleLines(p.panelX, p.panelY, p.panelWidth, p.panelHeight, ColorPanelBorder)

	rl.DrawText("FIELD TRENDS", p.panelX+10, p.panelY+6, 14, colorTrendTitle)

	if p.historyCount == 0 {
		rl.DrawText("Waiting for data...", p.panelX+140, p.panelY+70, 14, ColorTextDim)
		return
	}

	graphX := p.panelX + 10
	graphY := p.panelY + 24
	graphW := p.panelWidth - 20
	graphH := p.panelHeight - 54

	p.drawGraph(graphX, graphY, graphW, graphH)
	p.drawLegend(p.panelX+10, p.panelY+p.panelHeight-24)
}

// drawGraph renders the line graph.
func (p *TrendPanel) drawGraph(x, y, w, h int32) {
	rl.DrawRectangle(x, y, w, h, colorGraphBg)
	rl.DrawRectangleLines(x, y, w, h, colorGraphGrid)

	for i := int32(1); i < 4; i++ {
		gridY := y + (h * i / 4)
		rl.DrawLine(x, gridY, x+w, gridY, colorGraphGrid)
	}

	if p.historyCount < 2 {
		return
	}

	fracMin, fracMax := p.seriesRange(fractionSeries)
	countMin, countMax := p.seriesRange(countSeries)

	for _, s := range fractionSeries {
		if p.seriesVisible[s] {
			p.drawSeriesLine(x, y, w, h, s, fracMin, fracMax)
		}
	}
	for _, s := range countSeries {
		if p.seriesVisible[s] {
			p.drawSeriesLine(x, y, w, h, s, countMin, countMax)
		}
	}

	rl.DrawText(fmt.Sprintf("%.2f", fracMax), x+2, y+2, 9, ColorTextDim)
	rl.DrawText(fmt.Sprintf("%.2f", fracMin), x+2, y+h-10, 9, ColorTextDim)

	maxLabel := fmt.Sprintf("%.0f", countMax)
	minLabel := fmt.Sprintf("%.0f", countMin)
	rl.DrawText(maxLabel, x+w-rl.MeasureText(maxLabel, 9)-2, y+2, 9, ColorTextDim)
	rl.DrawText(minLabel, x+w-rl.MeasureText(minLabel, 9)-2, y+h-10, 9, ColorTextDim)
}

// seriesRange finds min/max across the visible series given, padded by 10%.
func (p *TrendPanel) seriesRange(series []int) (min, max float64) {
	min = math.MaxFloat64
	max = -math.MaxFloat64
	hasVisible := false

	for _, s := range series {
		if !p.seriesVisible[s] {
			continue
		}
		hasVisible = true
		for i := 0; i < p.historyCount; i++ {
			v := p.value(s, i)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	if !hasVisible || p.historyCount == 0 {
		return 0, 1
	}
	if min >= max {
		return min - 0.5, max + 0.5
	}

	padding := (max - min) * 0.1
	return min - padding, max + padding
}

// drawSeriesLine draws one data series as a line.
func (p *TrendPanel) drawSeriesLine(x, y, w, h int32, series int, minVal, maxVal float64) {
	color := p.seriesColors[series]
	valueRange := maxVal - minVal
	if valueRange <= 0 {
		valueRange = 1
	}

	var prevX, prevY int32
	for i := 0; i < p.historyCount; i++ {
		v := p.value(series, i)

		px := x + int32(float64(i)*float64(w)/float64(p.historyCount-1))
		py := y + h - int32((v-minVal)/valueRange*float64(h))
		if py < y {
			py = y
		}
		if py > y+h {
			py = y + h
		}

		if i > 0 {
			rl.DrawLine(prevX, prevY, px, py, color)
		}
		prevX, prevY = px, py
	}
}

// drawLegend draws the clickable legend.
func (p *TrendPanel) drawLegend(x, y int32) {
	for i := 0; i < numSeries; i++ {
		itemX := x + int32(i)*110
		color := p.seriesColors[i]
		textColor := ColorText
		if !p.seriesVisible[i] {
			color.A = 80
			textColor = ColorTextDim
		}
		rl.DrawRectangle(itemX, y+2, 10, 10, color)
		rl.DrawText(p.seriesNames[i], itemX+14, y, 11, textColor)
	}
	rl.DrawText("(click to toggle)", x+int32(numSeries)*110+10, y, 10, ColorTextDim)
}
