package settings

// PluginName identifies a runtime plugin. The settings layer treats it as an
// opaque key and never interprets its contents.
type PluginName string

// Alias is one named version shortcut within a plugin's alias table.
type Alias struct {
	Name  string
	Value string
}

// AliasMap holds per-plugin alias tables. Both the plugin order and the alias
// order within each plugin are insertion order, which is visible wherever
// aliases are listed. Re-setting an existing alias replaces its value in
// place without moving it. The zero value is an empty, usable map.
type AliasMap struct {
	plugins []PluginName
	tables  map[PluginName]*aliasTable
}

type aliasTable struct {
	names  []string
	values map[string]string
}

// Set records value under plugin/name, appending new keys and updating
// existing ones in place.
func (m *AliasMap) Set(plugin PluginName, name, value string) {
	if m.tables == nil {
		m.tables = make(map[PluginName]*aliasTable)
	}
	table, ok := m.tables[plugin]
	if !ok {
		table = &aliasTable{values: make(map[string]string)}
		m.tables[plugin] = table
		m.plugins = append(m.plugins, plugin)
	}
	if _, exists := table.values[name]; !exists {
		table.names = append(table.names, name)
	}
	table.values[name] = value
}

// Get looks up one alias value.
func (m *AliasMap) Get(plugin PluginName, name string) (string, bool) {
	table, ok := m.tables[plugin]
	if !ok {
		return "", false
	}
	value, ok := table.values[name]
	return value, ok
}

// Plugins lists plugin names in insertion order.
func (m *AliasMap) Plugins() []PluginName {
	out := make([]PluginName, len(m.plugins))
	copy(out, m.plugins)
	return out
}

// For lists a plugin's aliases in insertion order. An unknown plugin yields
// an empty list.
func (m *AliasMap) For(plugin PluginName) []Alias {
	table, ok := m.tables[plugin]
	if !ok {
		return nil
	}
	out := make([]Alias, 0, len(table.names))
	for _, name := range table.names {
		out = append(out, Alias{Name: name, Value: table.values[name]})
	}
	return out
}

// Len reports the number of plugins with at least one alias.
func (m *AliasMap) Len() int {
	return len(m.plugins)
}

// Clone returns a deep copy, preserving order. Builders hand clones to
// resolved Settings so later builder mutations cannot leak through.
func (m *AliasMap) Clone() AliasMap {
	var out AliasMap
	for _, plugin := range m.plugins {
		for _, alias := range m.For(plugin) {
			out.Set(plugin, alias.Name, alias.Value)
		}
	}
	return out
}
