package graphql

// Запросы к коммерс-бэкенду. Схема — Magento-совместимая: гостевая корзина,
// itemsV2 и products-фильтр по SKU.

const queryProductBySKU = `
query GetProductBySku($sku: String!) {
  products(filter: { sku: { eq: $sku } }) {
    items {
      sku
      name
      stock_status
      brand
      image {
        url
        label
      }
      price_range {
        minimum_price {
          final_price {
            value
            currency
          }
        }
      }
    }
  }
}`

const mutationCreateGuestCart = `
mutation {
  createGuestCart {
    cart {
      id
    }
  }
}`

// cartFields — общий фрагмент содержимого корзины, который возвращает
// каждая мутация и запрос чтения (снимок всегда полный).
const cartFields = `
cart {
  itemsV2 {
    items {
      id
      quantity
      product {
        sku
        name
        image {
          url
        }
        price_range {
          minimum_price {
            final_price {
              value
              currency
            }
          }
        }
      }
    }
  }
}`

const queryCartItems = `
query GetCartItems($cartId: String!) {
  cart(cart_id: $cartId) {
    itemsV2 {
      items {
        id
        quantity
        product {
          sku
          name
          image {
            url
          }
          price_range {
            minimum_price {
              final_price {
                value
                currency
              }
            }
          }
        }
      }
    }
  }
}`

const mutationAddToCart = `
mutation AddSimpleProductToCart($cartId: String!, $sku: String!, $quantity: Float!) {
  addSimpleProductsToCart(
    input: {
      cart_id: $cartId
      cart_items: [{ data: { sku: $sku, quantity: $quantity } }]
    }
  ) {` + cartFields + `
  }
}`

const mutationUpdateQuantity = `
mutation UpdateCartItemQuantity($cartId: String!, $itemId: Int!, $quantity: Float!) {
  updateCartItems(
    input: {
      cart_id: $cartId
      cart_items: [{ cart_item_id: $itemId, quantity: $quantity }]
    }
  ) {` + cartFields + `
  }
}`

const mutationRemoveItem = `
mutation RemoveCartItem($cartId: String!, $itemId: Int!) {
  removeItemFromCart(input: { cart_id: $cartId, cart_item_id: $itemId }) {` + cartFields + `
  }
}`
