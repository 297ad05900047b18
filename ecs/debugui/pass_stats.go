package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skiff/ecs"
)

func NewPassStatsWindow(historyFrames int) *PassStatsWindow {
	return &PassStatsWindow{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ps *PassStatsWindow) Render(stats *ecs.SchedulerStats, deltaTime float32) {
	if !imgui.BeginV("Pass Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.Record(deltaTime)

	imgui.Text(fmt.Sprintf("Live Objects: %d", stats.LiveObjects))
	imgui.Text(fmt.Sprintf("Next ID: %s", stats.NextID))
	imgui.Text(fmt.Sprintf("Passes Run: %d", stats.TotalPasses))

	avgFrameTime := ps.AverageFrameTime()
	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PassStatsTable", 7, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Pass")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableSetupColumn("Visited")
		imgui.TableSetupColumn("Spawned")
		imgui.TableSetupColumn("Destroyed")
		imgui.TableHeadersRow()

		for _, pass := range stats.Passes {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(pass.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", pass.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(pass.AvgDuration.Round(time.Microsecond).String())
			imgui.TableNextColumn()
			imgui.Text(pass.MaxDuration.Round(time.Microsecond).String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", pass.LastVisited))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d / %d", pass.LastSpawned, pass.TotalSpawned))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d / %d", pass.LastDestroyed, pass.TotalDestroyed))
		}

		imgui.EndTable()
	}

	imgui.End()
}

// Record stores one frame's delta time, in seconds, in the history ring.
func (ps *PassStatsWindow) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the history in milliseconds.
func (ps *PassStatsWindow) AverageFrameTime() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
