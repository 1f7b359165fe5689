package scene

import (
	"fmt"
	"sort"
	"strings"
)

// Constructor builds a preset scene
type Constructor func(opts Options) (*Scene, error)

// SceneInfo describes a registered scene preset
type SceneInfo struct {
	ID          string // Name used on the command line
	DisplayName string // Human readable name
	Description string
	Group       string // Grouping category
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string
	Scenes []SceneInfo
}

type entry struct {
	info        SceneInfo
	constructor Constructor
}

const (
	groupShowcase = "Showcase"
	groupTextures = "Textures"
	groupLights   = "Lights"
)

var registry = map[string]entry{}

func register(id, group, description string, constructor Constructor) {
	if _, exists := registry[id]; exists {
		panic(fmt.Sprintf("scene %q registered twice", id))
	}
	registry[id] = entry{
		info: SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
			Group:       group,
		},
		constructor: constructor,
	}
}

func init() {
	register("ground-metal", groupShowcase, "Metal sphere on a diffuse ground sphere under a sky gradient", NewGroundMetalScene)
	register("bouncing-spheres", groupShowcase, "Random field of moving diffuse, metal and glass spheres", NewBouncingSpheresScene)
	register("checkered-spheres", groupTextures, "Two large spheres with a spatial checker texture", NewCheckeredSpheresScene)
	register("perlin-spheres", groupTextures, "Marble noise sphere on a marble ground", NewPerlinSpheresScene)
	register("earth", groupTextures, "Globe with an image texture (UV debug pattern when the image is missing)", NewEarthScene)
	register("quads", groupShowcase, "Five colored parallelograms", NewQuadsScene)
	register("simple-light", groupLights, "Marble sphere lit by an emissive quad and sphere", NewSimpleLightScene)
	register("cornell-box", groupLights, "Cornell box with two rotated blocks", NewCornellScene)
	register("cornell-smoke", groupLights, "Cornell box with blocks of white and black smoke", NewCornellSmokeScene)
	register("final", groupShowcase, "Every primitive, material and texture in one scene", NewFinalScene)
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the constructor for a scene name
func Lookup(name string) (Constructor, error) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return e.constructor, nil
}

// New looks up and constructs a scene by name
func New(name string, opts Options) (*Scene, error) {
	constructor, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return constructor(opts)
}

// Describe returns information about every registered scene, sorted by ID
func Describe() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, e := range registry {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Groups returns the scenes grouped by category, groups in alphabetical order
func Groups() []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, info := range Describe() {
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}

	var groupNames []string
	for groupName := range groupMap {
		groupNames = append(groupNames, groupName)
	}
	sort.Strings(groupNames)

	groups := make([]SceneGroup, 0, len(groupNames))
	for _, groupName := range groupNames {
		groups = append(groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}
	return groups
}

// titleCase converts a scene name to title case
// e.g., "cornell-box" -> "Cornell Box"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
