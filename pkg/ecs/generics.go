package ecs

import "reflect"

// 组件以类型参数为键存取，调用方无需类型断言

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// AddComponent 为实体添加 T 类型组件
// 同类型组件会被覆盖；实体不存在时忽略
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.set(id, typeOf[T](), component)
}

// GetComponent 获取实体的 T 类型组件
//
// 示例：
//
//	button, ok := ecs.GetComponent[*components.Button](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	comp, found := em.get(id, typeOf[T]())
	typed, ok := comp.(T)
	return typed, found && ok
}

// GetEntitiesWith1 查询拥有 T1 组件的实体，按创建顺序排列
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.query(typeOf[T1]())
}
