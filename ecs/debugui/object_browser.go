package debugui

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
)

type ObjectInfo struct {
	ID             ecs.UUID
	Name           string
	Box            geom.Box
	Collidable     bool
	ComponentTypes []string
	ComponentCount int
}

type ObjectBrowserCache struct {
	objects       []ObjectInfo
	sortColumn    int
	sortAscending bool
}

func NewObjectBrowser(maxObjectsPerPage int) *ObjectBrowser {
	return &ObjectBrowser{
		cache: &ObjectBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxObjectsPerPage: maxObjectsPerPage,
	}
}

func (ob *ObjectBrowser) Render(objects []*ecs.GameObject) {
	if !imgui.BeginV("Object Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	// Boxes move every frame, so the cache is rebuilt unconditionally.
	ob.Refresh(objects)

	imgui.InputTextWithHint("##search", "Search...", &ob.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	imgui.Checkbox("Collidable", &ob.collidableOnly)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ob.filterText = ""
		ob.collidableOnly = false
	}

	filtered := ob.Filtered()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Bounding Box")
		imgui.TableSetupColumn("Collidable")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			ob.cache.sortColumn = int(spec.ColumnIndex())
			ob.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			ob.sortObjects()
			sortSpecs.SetSpecsDirty(false)
			filtered = ob.Filtered()
		}

		startIdx := ob.currentPage * ob.maxObjectsPerPage
		endIdx := min(startIdx+ob.maxObjectsPerPage, len(filtered))

		for i := startIdx; i < endIdx; i++ {
			obj := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := ob.selectedID == obj.ID
			if imgui.SelectableBoolV(obj.ID.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ob.selectedID = obj.ID
			}

			imgui.TableNextColumn()
			imgui.Text(obj.Name)

			imgui.TableNextColumn()
			imgui.Text(formatBox(obj.Box))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%t", obj.Collidable))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(obj.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}

	if len(filtered) > ob.maxObjectsPerPage {
		totalPages := (len(filtered) + ob.maxObjectsPerPage - 1) / ob.maxObjectsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d objects)", ob.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && ob.currentPage > 0 {
			ob.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && ob.currentPage < totalPages-1 {
			ob.currentPage++
		}
	} else {
		ob.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d objects", len(filtered)))
	}

	imgui.End()
}

// Refresh rebuilds the rows from the live collection.
func (ob *ObjectBrowser) Refresh(objects []*ecs.GameObject) {
	ob.cache.objects = ob.cache.objects[:0]

	for _, obj := range objects {
		comps := obj.Components()
		componentTypes := make([]string, len(comps))
		for i, c := range comps {
			componentTypes[i] = typeName(c)
		}

		ob.cache.objects = append(ob.cache.objects, ObjectInfo{
			ID:             obj.ID(),
			Name:           obj.Name(),
			Box:            obj.BoundingBox(),
			Collidable:     obj.Collidable(),
			ComponentTypes: componentTypes,
			ComponentCount: len(componentTypes),
		})
	}

	ob.sortObjects()
}

func (ob *ObjectBrowser) sortObjects() {
	sort.SliceStable(ob.cache.objects, func(i, j int) bool {
		a, b := ob.cache.objects[i], ob.cache.objects[j]
		var less bool

		switch ob.cache.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = a.Name < b.Name
		case 2:
			less = a.Box.X < b.Box.X || (a.Box.X == b.Box.X && a.Box.Y < b.Box.Y)
		case 3:
			less = !a.Collidable && b.Collidable
		case 4:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.ID < b.ID
		}

		if !ob.cache.sortAscending {
			return !less
		}
		return less
	})
}

// Filtered returns the cached rows matching the current filter.
func (ob *ObjectBrowser) Filtered() []ObjectInfo {
	if ob.filterText == "" && !ob.collidableOnly {
		return ob.cache.objects
	}

	filtered := make([]ObjectInfo, 0, len(ob.cache.objects))
	filterLower := strings.ToLower(ob.filterText)

	for _, obj := range ob.cache.objects {
		if ob.collidableOnly && !obj.Collidable {
			continue
		}

		if ob.filterText != "" {
			componentsStr := strings.ToLower(strings.Join(obj.ComponentTypes, " "))

			if !strings.Contains(obj.ID.String(), filterLower) &&
				!strings.Contains(strings.ToLower(obj.Name), filterLower) &&
				!strings.Contains(componentsStr, filterLower) {
				continue
			}
		}

		filtered = append(filtered, obj)
	}

	return filtered
}

// SetFilter replaces the search text.
func (ob *ObjectBrowser) SetFilter(text string, collidableOnly bool) {
	ob.filterText = text
	ob.collidableOnly = collidableOnly
}

func (ob *ObjectBrowser) Selected() ecs.UUID {
	return ob.selectedID
}

func (ob *ObjectBrowser) Select(id ecs.UUID) {
	ob.selectedID = id
}

func typeName(c ecs.Component) string {
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}

func formatBox(b geom.Box) string {
	return fmt.Sprintf("(%.0f, %.0f) %.0fx%.0f", b.X, b.Y, b.Width, b.Height)
}
