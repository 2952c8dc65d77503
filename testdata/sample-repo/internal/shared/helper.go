package shared

type DataManager struct {
	entries map[string]string
}

func NewDataManager() *DataManager {
	return &DataManager{entries: make(map[string]string)}
}

func (m *DataManager) Put(key, value string) {
	m.entries[key] = value
}
