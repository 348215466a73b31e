package ecs

import "reflect"

// EntityID 实体标识，从 1 开始分配，0 表示无效实体
type EntityID uint64

// EntityManager 保存一个场景内的实体及其组件
//
// 实体按创建顺序保存，查询结果同样按创建顺序返回：
// 悬停刷新、点击分发和绘制顺序都依赖这一点。
// 场景重新进入时整体替换 EntityManager，不单独销毁实体。
//
// 非线程安全，只在游戏主循环中访问
type EntityManager struct {
	order      []EntityID
	components map[EntityID]map[reflect.Type]any
}

// NewEntityManager 创建空的实体管理器
func NewEntityManager() *EntityManager {
	return &EntityManager{
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回其 ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(len(em.order) + 1)
	em.order = append(em.order, id)
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// set 按类型保存组件，同类型覆盖；实体不存在时返回 false
func (em *EntityManager) set(id EntityID, componentType reflect.Type, component any) bool {
	compMap, exists := em.components[id]
	if !exists {
		return false
	}
	compMap[componentType] = component
	return true
}

func (em *EntityManager) get(id EntityID, componentType reflect.Type) (any, bool) {
	comp, found := em.components[id][componentType]
	return comp, found
}

// query 返回拥有全部给定组件类型的实体，按创建顺序排列
func (em *EntityManager) query(componentTypes ...reflect.Type) []EntityID {
	var result []EntityID
	for _, id := range em.order {
		compMap := em.components[id]
		matched := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				matched = false
				break
			}
		}
		if matched {
			result = append(result, id)
		}
	}
	return result
}
